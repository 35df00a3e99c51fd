package controllers

import (
	"strings"

	"Tracer-Study-Portal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Page is the descriptor the front-end shell renders a route from.
type Page struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
	Role  string `json:"role,omitempty"`
}

var pageTitles = map[string]string{
	"landing":         "Tracer Study",
	"login":           "Masuk",
	"forgot-password": "Lupa Password",
	"dashboard":       "Dashboard",
	"survey":          "Survei",
	"employee":        "Pegawai",
	"alumni":          "Alumni",
	"faculty":         "Fakultas",
	"program-study":   "Program Studi",
	"profile":         "Profil",
}

// RenderPage answers a page route that got past the route guard.
func RenderPage(c *fiber.Ctx) error {
	path := c.Path()
	name := "landing"
	if seg := strings.SplitN(strings.Trim(path, "/"), "/", 2)[0]; seg != "" {
		name = seg
	}
	title, ok := pageTitles[name]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(Page{Name: "not-found", Path: path, Title: "Halaman tidak ditemukan"})
	}
	return c.JSON(Page{
		Name:  name,
		Path:  path,
		Title: title,
		Role:  c.Cookies(middleware.UserRoleCookie),
	})
}
