package server

import (
	"github.com/gofiber/fiber/v2"
)

const baseTitle = "Microblog"

// pageTitle composes a per-page title from the application base title.
// An empty page name yields the bare base title for the home page.
func pageTitle(page string) string {
	if page == "" {
		return baseTitle
	}
	return baseTitle + " | " + page
}

// staticPage renders a fixed JSON page payload.
func staticPage(c *fiber.Ctx, page, heading, body string) error {
	return c.JSON(fiber.Map{
		"title":   pageTitle(page),
		"heading": heading,
		"body":    body,
	})
}

// Home handles GET /
func (s *Server) Home(c *fiber.Ctx) error {
	return staticPage(c, "",
		"Welcome to the Microblog",
		"Share short posts with the people who follow you.")
}

// Help handles GET /help
func (s *Server) Help(c *fiber.Ctx) error {
	return staticPage(c, "Help",
		"Help",
		"Sign up, post microposts up to 140 characters, and follow other users to build your feed.")
}

// About handles GET /about
func (s *Server) About(c *fiber.Ctx) error {
	return staticPage(c, "About",
		"About",
		"A small social microblogging service: user accounts, microposts, and a followed-users feed.")
}

// Contact handles GET /contact
func (s *Server) Contact(c *fiber.Ctx) error {
	return staticPage(c, "Contact",
		"Contact",
		"Questions or feedback? Open an issue on the project tracker.")
}
