package routes

import (
	"github.com/gin-gonic/gin"

	"financas-api/handlers"
	"financas-api/middleware"
	"financas-api/services"
	"financas-api/stores"
)

// Deps carries the store set the API runs on. main wires the Postgres
// implementations; the test suite wires the memory ones.
type Deps struct {
	Usuarios   stores.UsuarioStore
	Categorias stores.CategoriaStore
	Receitas   stores.TransacaoStore
	Despesas   stores.TransacaoStore
}

// SetupRoutes wires every route of the API onto the router.
func SetupRoutes(router *gin.Engine, deps Deps) {
	ws := handlers.NewWSHandler()

	usuarioService := services.NewUsuarioService(deps.Usuarios)
	ledgerService := services.NewLedgerService(deps.Categorias, deps.Receitas, deps.Despesas)
	receitaService := services.NewTransacaoService(deps.Receitas, ledgerService, "Receita")
	despesaService := services.NewTransacaoService(deps.Despesas, ledgerService, "Despesa")
	dashboardService := services.NewDashboardService(deps.Receitas, deps.Despesas)

	usuarioHandler := &handlers.UsuarioHandler{Service: usuarioService}
	router.POST("/usuarios/registrar", usuarioHandler.Registrar)
	router.POST("/usuarios/login", usuarioHandler.Login)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/usuarios/2fa/setup", usuarioHandler.Setup2FA)
	protected.POST("/usuarios/2fa/verificar", usuarioHandler.Confirmar2FA)
	protected.POST("/usuarios/2fa/desativar", usuarioHandler.Desativar2FA)

	setupCategoriaRoutes(protected, ledgerService, ws)
	setupTransacaoRoutes(protected, "/receitas", receitaService, "receita", ws)
	setupTransacaoRoutes(protected, "/despesas", despesaService, "despesa", ws)
	setupDashboardRoutes(protected, dashboardService)

	protected.GET("/ws", ws.HandleWS)
}

func setupCategoriaRoutes(rg *gin.RouterGroup, svc *services.LedgerService, ws *handlers.WSHandler) {
	h := &handlers.CategoriaHandler{Service: svc, WS: ws}

	rg.GET("/categorias", h.List)
	rg.POST("/categorias", h.Create)
	rg.GET("/categorias/:id", middleware.ValidateIDParam(), h.Get)
	rg.PUT("/categorias/:id", middleware.ValidateIDParam(), h.Update)
	rg.DELETE("/categorias/:id", middleware.ValidateIDParam(), h.Delete)
}

func setupTransacaoRoutes(rg *gin.RouterGroup, path string, svc *services.TransacaoService, recurso string, ws *handlers.WSHandler) {
	h := &handlers.TransacaoHandler{Service: svc, WS: ws, Recurso: recurso}

	rg.GET(path, h.List)
	rg.POST(path, h.Create)
	rg.GET(path+"/:id", middleware.ValidateIDParam(), h.Get)
	rg.PUT(path+"/:id", middleware.ValidateIDParam(), h.Update)
	rg.DELETE(path+"/:id", middleware.ValidateIDParam(), h.Delete)
}

func setupDashboardRoutes(rg *gin.RouterGroup, svc *services.DashboardService) {
	h := &handlers.DashboardHandler{Service: svc}

	rg.POST("/dashboard/despesas-receitas", h.DespesasReceitas)
	rg.POST("/dashboard/evolucao", h.Evolucao)
	rg.POST("/dashboard/despesas-por-categoria", h.DespesasPorCategoria)
	rg.POST("/dashboard/receitas-por-categoria", h.ReceitasPorCategoria)
}
