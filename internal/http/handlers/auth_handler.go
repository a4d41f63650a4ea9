package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yizer/internal/log"
	"yizer/internal/validate"
)

// AuthHandler serves the static authentication screens. Submissions are
// simulated: forms are validated for shape, a notice is shown, and no
// account or credential state exists anywhere in the process.
type AuthHandler struct{}

func (h *AuthHandler) Selection(c *fiber.Ctx) error {
	return render(c, "auth", nil)
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Correo o contraseña no válidos"})
	}
	log.Info(c, "auth.login.simulated", nil)
	return c.Redirect("/?auth=login")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if _, ok := validate.Name(c.FormValue("username")); !ok {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "El nombre debe tener entre 1 y 20 caracteres"})
	}
	if _, ok := validate.Email(c.FormValue("email")); !ok {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Correo no válido"})
	}
	log.Info(c, "auth.register.simulated", nil)
	return c.Redirect("/?auth=register")
}

func (h *AuthHandler) RecoveryForm(c *fiber.Ctx) error {
	return render(c, "recovery", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Recover(c *fiber.Ctx) error {
	if _, ok := validate.Email(c.FormValue("email")); !ok {
		return c.Status(fiber.StatusBadRequest).Render("recovery", fiber.Map{"Err": "Correo no válido"})
	}
	log.Info(c, "auth.recovery.simulated", nil)
	return c.Redirect("/login?recovery=sent")
}
