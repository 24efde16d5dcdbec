package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Hossam-elsheikh/lap-bonus/internal/handler"
	appmw "github.com/Hossam-elsheikh/lap-bonus/internal/middleware"
	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
	"github.com/Hossam-elsheikh/lap-bonus/internal/service"
	"github.com/Hossam-elsheikh/lap-bonus/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e     *echo.Echo
	sha   string
	build string
}

func New(db *gorm.DB, store storage.ObjectStore, firebaseProjectID, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	memberRepo := repository.NewMemberRepository(db)
	tierRepo := repository.NewTierRepository(db)
	typeRepo := repository.NewTestTypeRepository(db)
	resultRepo := repository.NewTestResultRepository(db)

	resultSvc := service.NewResultService(memberRepo, typeRepo, tierRepo, resultRepo, store)
	statsSvc := service.NewStatsService(memberRepo, tierRepo, typeRepo, resultRepo)
	memberSvc := service.NewMemberService(memberRepo, tierRepo, resultRepo)

	resultHandler := handler.NewResultHandler(resultSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	memberHandler := handler.NewMemberHandler(memberSvc)
	lookupHandler := handler.NewLookupHandler(typeRepo, tierRepo)

	authMw, err := appmw.NewAuthMiddleware(context.Background(), firebaseProjectID)
	if err != nil {
		e.Logger.Fatalf("failed to init firebase auth: %v", err)
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api", authMw.RequireAuth)
	api.POST("/tests", resultHandler.Create)
	api.GET("/tests", resultHandler.List)
	api.GET("/dashboard/stats", statsHandler.Dashboard)
	api.GET("/members", memberHandler.List)
	api.GET("/members/:id", memberHandler.Get)
	api.GET("/test-types", lookupHandler.TestTypes)
	api.GET("/tiers", lookupHandler.Tiers)

	return &Server{e: e, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
