package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"giglane/internal/domain"
	"giglane/pkg/config"
	"giglane/pkg/errutil"
	"giglane/pkg/middleware"
	"giglane/services/command"
	"giglane/services/reconciler"
)

var Module = fx.Module("http",
	fx.Provide(
		NewRouter,
		func(r *gin.Engine) http.Handler { return r },
	),
)

type Params struct {
	fx.In

	Config     *config.Config
	Commands   *command.Service
	Reconciler *reconciler.Service
}

// NewRouter exposes the command endpoint plus the derived read views. Who
// the caller is comes from headers; upstream auth is expected to have
// verified them.
func NewRouter(p Params) *gin.Engine {
	if p.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Error())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/commands/:name", executeCommand(p.Commands))
	v1.GET("/sellers/:id/balance", sellerBalance(p.Reconciler))
	v1.GET("/sellers/:id/statement", sellerStatement(p.Reconciler))
	v1.GET("/platform/summary", platformSummary(p.Reconciler))

	return r
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetHeader("X-Actor-Id"),
		Role: domain.Role(c.GetHeader("X-Actor-Role")),
	}
}

func executeCommand(svc *command.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Error(errutil.Validation("unreadable request body"))
			return
		}

		evt, err := svc.Execute(c.Request.Context(), domain.CommandName(c.Param("name")), actorFrom(c), payload)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"event": evt})
	}
}

func sellerBalance(svc *reconciler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		balance, err := svc.AvailableBalance(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"seller_id": c.Param("id"), "available": balance})
	}
}

func sellerStatement(svc *reconciler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svc.SellerStatement(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

func platformSummary(svc *reconciler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := svc.PlatformSummary(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}
