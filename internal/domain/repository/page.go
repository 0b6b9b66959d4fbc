package repository

// Page paginación por desplazamiento (skip/limit). Los listados se ordenan por clave primaria.
type Page struct {
	Skip  int
	Limit int
}
