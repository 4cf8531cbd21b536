package catalog

type CreateRoomRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	HasProjector bool   `json:"has_projector"`
	HasComputers int    `json:"has_computers" validate:"gte=0"`
}
