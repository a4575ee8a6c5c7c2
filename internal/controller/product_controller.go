package controller

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service   service.ProductService
	uploadDir string
}

func CreateProductController(e *echo.Group, service service.ProductService, uploadDir string, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := ProductController{
		service:   service,
		uploadDir: uploadDir,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products/categories/list", c.GetCategories)

	admin := e.Group("/admin", isLoggedIn, isAdmin)
	admin.GET("/products", c.GetAllProducts)
	admin.POST("/products", c.AddProduct)
	admin.PUT("/products/:id", c.UpdateProduct)
	admin.DELETE("/products/:id", c.DeleteProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	data, err := c.service.GetProducts(e.Request().Context(), filter, false)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProductController) GetAllProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetAllProducts").Msg("")
	}

	data, err := c.service.GetProducts(e.Request().Context(), filter, true)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	data, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProductController) GetCategories(e echo.Context) error {
	data, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

// saveUploadedFiles stores the multipart files from the named field under
// the upload dir and returns their public paths. Requests without file
// parts fall through with an empty slice so URL-based images keep working.
func saveUploadedFiles(e echo.Context, field string, uploadDir string) ([]string, error) {
	form, err := e.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File[field]
	paths := make([]string, 0, len(files))

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}

		filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
		dstPath := filepath.Join(uploadDir, filename)

		dst, err := os.Create(dstPath)
		if err != nil {
			src.Close()
			return nil, err
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return nil, err
		}

		paths = append(paths, fmt.Sprintf("/uploads/%s", filename))
	}

	return paths, nil
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	uploaded, err := saveUploadedFiles(e, "images", c.uploadDir)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}
	if len(uploaded) > 0 {
		payload.Images = uploaded
	}

	data, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}
	payload.ID = e.Param("id")

	uploaded, err := saveUploadedFiles(e, "images", c.uploadDir)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}
	if len(uploaded) > 0 {
		payload.Images = uploaded
	}

	data, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
