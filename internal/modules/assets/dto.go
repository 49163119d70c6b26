package assets

type CreateAssetRequest struct {
	Code             string   `json:"codigo_activo" binding:"required"`
	Name             string   `json:"nombre_activo" binding:"required"`
	Description      string   `json:"descripcion"`
	Brand            string   `json:"marca"`
	Model            string   `json:"modelo"`
	SerialNumber     *string  `json:"numero_serie"`
	Status           string   `json:"status"`
	AcquisitionDate  string   `json:"fecha_adquisicion" binding:"required"`
	AcquisitionCost  *float64 `json:"costo_adquisicion" binding:"required"`
	UsefulLifeMonths *int     `json:"vida_util_meses"`
	ResidualValue    *float64 `json:"valor_residual"`
	LocationID       *int64   `json:"ubicacion_id"`
	AssignedUserID   *int64   `json:"usuario_asignado_id"`
	PurchaseID       *int64   `json:"compra_id"`
}

type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}
