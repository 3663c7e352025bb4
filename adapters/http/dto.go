package http

import (
	"time"

	profileUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/profile"
	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
)

// Field names are camelCase to match the dashboard client.

type SuccessResponse struct {
	Success bool `json:"success"`
}

// Profile DTOs
type ProfileDTO struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PhotoURL          *string   `json:"photoUrl,omitempty"`
	PhotoThumbnailURL *string   `json:"photoThumbnailUrl,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type UploadPhotoRequest struct {
	PhotoData string `json:"photoData" binding:"required"`
	FileName  string `json:"fileName" binding:"required"`
}

type UploadPhotoResponse struct {
	Success  bool   `json:"success"`
	PhotoURL string `json:"photoUrl"`
}

type ProfileDataDTO struct {
	Profile      ProfileDTO       `json:"profile"`
	Skills       []SkillDTO       `json:"skills"`
	Education    []EducationDTO   `json:"education"`
	Certificates []CertificateDTO `json:"certificates"`
	Tools        []ToolDTO        `json:"tools"`
	SocialMedia  []SocialMediaDTO `json:"socialMedia"`
	Projects     []ProjectDTO     `json:"projects"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:                p.ID,
		Name:              p.Name,
		Title:             p.Title,
		Location:          p.Location,
		Email:             p.Email,
		Phone:             p.Phone,
		PhotoURL:          p.PhotoURL,
		PhotoThumbnailURL: p.PhotoThumbnailURL,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToProfileDataDTO(v *profileUC.View) ProfileDataDTO {
	dto := ProfileDataDTO{
		Profile:      ToProfileDTO(v.Profile),
		Skills:       make([]SkillDTO, len(v.Skills)),
		Education:    make([]EducationDTO, len(v.Education)),
		Certificates: make([]CertificateDTO, len(v.Certificates)),
		Tools:        make([]ToolDTO, len(v.Tools)),
		SocialMedia:  make([]SocialMediaDTO, len(v.SocialMedia)),
		Projects:     ToProjectDTOs(v.Projects),
	}
	for i, s := range v.Skills {
		dto.Skills[i] = ToSkillDTO(s)
	}
	for i, e := range v.Education {
		dto.Education[i] = ToEducationDTO(e)
	}
	for i, c := range v.Certificates {
		dto.Certificates[i] = ToCertificateDTO(c)
	}
	for i, t := range v.Tools {
		dto.Tools[i] = ToToolDTO(t)
	}
	for i, s := range v.SocialMedia {
		dto.SocialMedia[i] = ToSocialMediaDTO(s)
	}
	return dto
}

// Skill DTOs
type SkillDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"`
}

type SkillRequest struct {
	Name       string `json:"name" binding:"required"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name, Percentage: s.Percentage, Category: s.Category}
}

// Education DTOs
type EducationDTO struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
}

type EducationRequest struct {
	Institution string `json:"institution" binding:"required"`
	Location    string `json:"location"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID,
		Institution: e.Institution,
		Location:    e.Location,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear,
	}
}

// Certificate DTOs
type CertificateDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer"`
	Description *string `json:"description,omitempty"`
	IssueDate   string  `json:"issueDate"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type CertificateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Issuer      string  `json:"issuer" binding:"required"`
	Description *string `json:"description"`
	IssueDate   string  `json:"issueDate" binding:"required"`
	ImageURL    *string `json:"imageUrl"`
}

func ToCertificateDTO(c *certificate.Certificate) CertificateDTO {
	return CertificateDTO{
		ID:          c.ID,
		Title:       c.Title,
		Issuer:      c.Issuer,
		Description: c.Description,
		IssueDate:   c.IssueDate,
		ImageURL:    c.ImageURL,
	}
}

// Tool DTOs
type ToolDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl,omitempty"`
}

type ToolRequest struct {
	Name    string  `json:"name" binding:"required"`
	IconURL *string `json:"iconUrl"`
}

func ToToolDTO(t *tool.Tool) ToolDTO {
	return ToolDTO{ID: t.ID, Name: t.Name, IconURL: t.IconURL}
}

// Social media DTOs
type SocialMediaDTO struct {
	ID       int64   `json:"id"`
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Username *string `json:"username,omitempty"`
}

type SocialMediaRequest struct {
	Platform string  `json:"platform" binding:"required"`
	URL      string  `json:"url" binding:"required"`
	Username *string `json:"username"`
}

func ToSocialMediaDTO(s *socialmedia.SocialMedia) SocialMediaDTO {
	return SocialMediaDTO{ID: s.ID, Platform: s.Platform, URL: s.URL, Username: s.Username}
}

// Project DTOs
type ProjectDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies *string   `json:"technologies,omitempty"`
	DemoURL      *string   `json:"demoUrl,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Technologies *string `json:"technologies"`
	DemoURL      *string `json:"demoUrl"`
	GithubURL    *string `json:"githubUrl"`
	ImageURL     *string `json:"imageUrl"`
	Featured     bool    `json:"featured"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		DemoURL:      p.DemoURL,
		GithubURL:    p.GithubURL,
		ImageURL:     p.ImageURL,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Auth DTOs
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

type VerifyTokenResponse struct {
	Valid bool `json:"valid"`
}
