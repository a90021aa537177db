package main

import (
	"flag"
	"log"
	"os"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/comite-td/dcs/dashboard"
	"github.com/comite-td/dcs/dataset"
)

func main() {
	rutaDataset := flag.String("dataset", dataset.ArchivoPorDefecto, "ruta del archivo Excel con la hoja Raw")
	flag.Parse()
	h := dashboard.New(*rutaDataset)
	e := echo.New()
	e.Use(middleware.Logger())
	e.GET("/", h.Pagina)
	e.GET("/api/dashboard", h.Datos)
	e.POST("/api/dataset", h.Subir)
	e.GET("/api/estado", h.Estado)
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("server online at ", port)
	log.Fatal(e.Start(":" + port))
}
