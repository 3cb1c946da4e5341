package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/catalog"
	docs "github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/docs"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/handler"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/middleware"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
)

type Deps struct {
	DB      *gorm.DB
	Books   repository.BookRepository
	Catalog catalog.Searcher

	ReportDelimiter rune
	AllowedOrigins  []string

	StartTime time.Time
	Version   string
}

func NewRouter(d Deps) *gin.Engine {
	e := gin.New()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(d.AllowedOrigins),
	)

	docs.SwaggerInfo.BasePath = "/api"

	handler.NewHealthHandler(d.DB, d.Books, d.StartTime, d.Version).RegisterRoutes(e)

	api := e.Group("/api")
	{
		handler.NewBookHandler(d.Books).RegisterRoutes(api)
		handler.NewExportHandler(d.Books, d.ReportDelimiter).RegisterRoutes(api)
		handler.NewSearchHandler(d.Catalog).RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
