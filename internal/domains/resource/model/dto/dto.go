package dto

import (
	"coworking/internal/domains/resource/model"
	"strings"
)

type CreateResourceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,resourcetype"`
}

// Normalize trims the name and maps console shortcuts onto the enum value.
func (c *CreateResourceRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)

	if t, ok := model.ParseType(c.Type); ok {
		c.Type = string(t)
	}
}

// UpdateResourceRequest changes only the fields that are set.
type UpdateResourceRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
	Type string `json:"type" validate:"omitempty,resourcetype"`
}

func (u *UpdateResourceRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)

	if t, ok := model.ParseType(u.Type); ok {
		u.Type = string(t)
	}
}

func (u *UpdateResourceRequest) Empty() bool {
	return u.Name == "" && u.Type == ""
}

type ResourceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	TypeName string `json:"type_name"`
}

func (r *ResourceResponse) FromModel(m model.Resource) {
	r.ID = m.ID
	r.Name = m.Name
	r.Type = string(m.Type)
	r.TypeName = m.Type.DisplayName()
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource) {
	r.TotalData = len(models)
	r.Resources = make([]ResourceResponse, len(models))

	for i, m := range models {
		r.Resources[i].FromModel(m)
	}
}
