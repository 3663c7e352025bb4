package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type Handlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Skill       *SkillHandler
	Education   *EducationHandler
	Certificate *CertificateHandler
	Tool        *ToolHandler
	SocialMedia *SocialMediaHandler
	Project     *ProjectHandler
}

type RouterOptions struct {
	// GuardWrites puts every mutating route behind AdminTokenMiddleware.
	GuardWrites bool
	TokenSvc    *auth.TokenService
}

func NewRouter(h Handlers, opts RouterOptions, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		// Public
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/profile", h.Profile.GetProfile)
		api.GET("/projects", h.Project.ListFeaturedProjects)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.Auth.Login)
			admin.POST("/verify", h.Auth.VerifyToken)
		}

		writes := api.Group("")
		if opts.GuardWrites {
			writes.Use(AdminTokenMiddleware(opts.TokenSvc))
		}
		{
			writes.GET("/admin/projects", h.Project.ListProjects)

			writes.PUT("/profile", h.Profile.UpdateProfile)
			writes.POST("/profile/photo", h.Profile.UploadPhoto)

			skills := writes.Group("/skills")
			{
				skills.POST("", h.Skill.CreateSkill)
				skills.PUT("/:id", h.Skill.UpdateSkill)
				skills.DELETE("/:id", h.Skill.DeleteSkill)
			}

			education := writes.Group("/education")
			{
				education.POST("", h.Education.CreateEducation)
				education.PUT("/:id", h.Education.UpdateEducation)
				education.DELETE("/:id", h.Education.DeleteEducation)
			}

			certificates := writes.Group("/certificates")
			{
				certificates.POST("", h.Certificate.CreateCertificate)
				certificates.PUT("/:id", h.Certificate.UpdateCertificate)
				certificates.DELETE("/:id", h.Certificate.DeleteCertificate)
			}

			tools := writes.Group("/tools")
			{
				tools.POST("", h.Tool.CreateTool)
				tools.PUT("/:id", h.Tool.UpdateTool)
				tools.DELETE("/:id", h.Tool.DeleteTool)
			}

			socialMedia := writes.Group("/social-media")
			{
				socialMedia.POST("", h.SocialMedia.CreateSocialMedia)
				socialMedia.PUT("/:id", h.SocialMedia.UpdateSocialMedia)
				socialMedia.DELETE("/:id", h.SocialMedia.DeleteSocialMedia)
			}

			projects := writes.Group("/projects")
			{
				projects.POST("", h.Project.CreateProject)
				projects.PUT("/:id", h.Project.UpdateProject)
				projects.DELETE("/:id", h.Project.DeleteProject)
			}
		}
	}

	return router
}
