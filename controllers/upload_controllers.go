package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mariahavens/restaurant-pos/utils"
)

type UploadController struct {
	Dir     string
	BaseURL string
}

func NewUploadController(dir, baseURL string) *UploadController {
	return &UploadController{Dir: dir, BaseURL: baseURL}
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// UploadImage stores a multipart image under a generated unique name and
// returns its public URL. The catalog treats the URL as an opaque string.
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("file is required"))
		return
	}

	if file.Size > 10<<20 {
		utils.RespondError(c, utils.ValidationError("file exceeds the 10MB limit"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		utils.RespondError(c, utils.ValidationError("only image files are accepted"))
		return
	}

	if err := os.MkdirAll(uc.Dir, 0o755); err != nil {
		utils.RespondError(c, err)
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(uc.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondError(c, err)
		return
	}

	url := fmt.Sprintf("%s/uploads/%s", uc.BaseURL, name)
	utils.InfoLogger.Printf("image stored: %s (%d bytes)", name, file.Size)

	c.JSON(http.StatusOK, gin.H{"url": url})
}
