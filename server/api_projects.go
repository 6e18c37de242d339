package synqserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectmapper "github.com/SHWFT/synqchain/internal/domains/projects/adapters/http/mapper"
	projectsapp "github.com/SHWFT/synqchain/internal/domains/projects/application"
)

// ProjectAPI wires HTTP transport with the projects service.
type ProjectAPI struct {
	service *projectsapp.Service
}

// NewProjectAPI creates a ProjectAPI backed by the provided service.
func NewProjectAPI(service *projectsapp.Service) ProjectAPI {
	return ProjectAPI{service: service}
}

// Post /projects
// Create a project; status defaults to in-progress, budget to 0
func (api *ProjectAPI) CreateProject(c *gin.Context) {
	var payload projectmapper.CreateProject
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	project, err := api.service.Create(c.Request.Context(), projectmapper.ToCreateInput(payload))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectmapper.FromProject(project))
}

// Get /projects
// List projects for the dashboard
func (api *ProjectAPI) ListProjects(c *gin.Context) {
	projects, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectmapper.FromProjectList(projects))
}
