package server

import (
	"log"
	"net/http"
	"strings"

	"guess-that-official/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

type officialForm struct {
	Name     string `form:"name" binding:"required"`
	Position string `form:"position" binding:"required"`
	State    string `form:"state" binding:"required,usstate"`
	FunFact  string `form:"fun_fact"`
	Category string `form:"category" binding:"category"`
	IsFake   string `form:"is_fake"`
}

var officialFormMessages = bindMessages{
	"Name":     {"required": "name is required"},
	"Position": {"required": "position is required"},
	"State":    {"required": "state is required", "usstate": "Invalid state"},
	"Category": {"category": "Invalid category"},
}

// adminRouter serves the admin page and mutation endpoints. Routes carry
// their full paths so the engine can be mounted straight onto the mux.
func (s *Server) adminRouter() *gin.Engine {
	registerValidators()
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/admin", s.handleAdminView)
	router.POST("/api/admin/official", s.handleAdminOfficialCreate)
	router.POST("/api/admin/sample-data", s.handleAdminSampleData)
	return router
}

func (s *Server) handleAdminView(c *gin.Context) {
	templ.Handler(web.Admin(s.adminData())).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) adminData() web.AdminData {
	data := web.AdminData{
		Categories: validCategories(),
		States:     validStates(),
	}
	for _, official := range s.officials.List() {
		data.Officials = append(data.Officials, web.OfficialRow{
			ID:        official.ID,
			Name:      official.Name,
			Position:  official.Position,
			State:     official.State,
			PhotoPath: official.PhotoPath,
			Category:  official.Category,
			IsFake:    official.IsFake,
		})
	}
	return data
}

func (s *Server) handleAdminOfficialCreate(c *gin.Context) {
	var form officialForm
	if ok, errs := bindForm(c, &form, officialFormMessages, "invalid official"); !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "errors": errs})
		return
	}
	if errs := validateOfficialData(form.Name, form.Position, form.State, form.Category); len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "errors": errs})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Photo required"})
		return
	}
	if fileHeader.Size > int64(s.cfg.MaxPhotoBytes) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Photo exceeds size limit"})
		return
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" && !validPhotoContentType(contentType) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please select a valid image file (JPG, PNG, GIF)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to read photo"})
		return
	}
	defer file.Close()

	photoPath, err := s.savePhoto(file, officialPhotoFilename(form.State, form.Position, form.Name))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	category := form.Category
	if category == "" {
		category = "general"
	}
	official, err := s.officials.Add(Official{
		Name:      normalizeText(form.Name),
		Position:  normalizeText(form.Position),
		State:     form.State,
		PhotoPath: photoPath,
		FunFact:   strings.TrimSpace(form.FunFact),
		Category:  category,
		IsFake:    form.IsFake == "true",
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := s.persistOfficial(&official); err != nil {
		log.Printf("official persistence failed id=%s error=%v", official.ID, err)
	}

	log.Printf("official added id=%s state=%s category=%s fake=%t", official.ID, official.State, official.Category, official.IsFake)
	c.JSON(http.StatusOK, gin.H{"success": true, "official_id": official.ID})
}

func (s *Server) handleAdminSampleData(c *gin.Context) {
	officials := sampleOfficials()
	if err := s.officials.Replace(officials); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "failed to create sample data"})
		return
	}
	for i := range officials {
		official := officials[i]
		if err := s.persistOfficial(&official); err != nil {
			log.Printf("sample official persistence failed id=%s error=%v", official.ID, err)
		}
	}
	log.Printf("sample data created officials=%d", len(officials))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
