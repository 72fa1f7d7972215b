// Package dto defines data transfer objects for the catalog HTTP API.
package dto

// ProductItem is one menu entry in the /productos response.
type ProductItem struct {
	ID          string  `json:"id_producto"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Category    string  `json:"categoria"`
	ImageURL    string  `json:"imagen_url"`
	Emoji       string  `json:"emoji"`
}
