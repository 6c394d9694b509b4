package entity

// Warehouse representa un almacén o sucursal donde se guarda inventario.
type Warehouse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Codigo    string `json:"codigo"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
}
