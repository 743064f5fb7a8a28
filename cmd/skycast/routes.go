package main

// registerRoutes sets up all API endpoints
func (a *App) registerRoutes() {
	a.router.GET("/ping", a.handlePing)

	v1 := a.router.Group("/v1")
	{
		v1.GET("/forecast/current", a.handleGetCurrent)
		v1.GET("/forecast/hourly", a.handleGetHourly)
		v1.GET("/forecast/daily", a.handleGetDaily)
	}
}
