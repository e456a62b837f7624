package http

import (
	"time"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"max=255"`
	Repository  string `json:"repository"  binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

func (r createReq) toInput() project.CreateProjectInput {
	return project.CreateProjectInput{
		Name:        r.Name,
		Repository:  r.Repository,
		Description: r.Description,
	}
}

// ---

type listReq struct {
	Active string `form:"active" binding:"omitempty,oneof=true false"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() project.ListProjectsInput {
	var isActive *bool
	if r.Active != "" {
		v := r.Active == "true"
		isActive = &v
	}
	return project.ListProjectsInput{
		IsActive: isActive,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool  `json:"is_active"`
}

func (r updateReq) toInput() project.UpdateProjectInput {
	return project.UpdateProjectInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// --- Response DTOs ---

type projectResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Repository  string    `json:"repository"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:          p.ID,
		Name:        p.Name,
		Repository:  p.Repository,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type createResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateProjectOutput) createResp {
	return createResp{Project: newProjectResp(out.Project)}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out project.ListProjectsOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{
		Projects: projects,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(out project.DetailProjectOutput) detailResp {
	return detailResp{Project: newProjectResp(out.Project)}
}

type updateResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newUpdateResp(out project.UpdateProjectOutput) updateResp {
	return updateResp{Project: newProjectResp(out.Project)}
}
