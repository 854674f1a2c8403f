package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/services"
)

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	return handler.render(c, "signup", fiber.Map{
		"Title": "Tally | Sign up",
	})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{
		"Title": "Tally | Log in",
	})
}

// Signup creates the account and establishes a session in the same request,
// so registering is equivalent to an immediate login.
func (handler *Handler) Signup(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := services.NormalizeEmail(credentials.Email)
	password := strings.TrimSpace(credentials.Password)
	if email == "" || password == "" {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(email, password, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return handler.respondAuthError(c, fiber.StatusConflict, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := services.NormalizeEmail(credentials.Email)
	user, err := handler.authService.Authenticate(email, credentials.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// respondAuthError keeps signup/login failures recoverable for browser
// flows: the error travels in a flash cookie and the form page re-renders
// with the email preserved.
func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}

	flash := FlashPayload{AuthError: message}
	switch c.Path() {
	case "/signup":
		flash.SignupEmail = services.NormalizeEmail(c.FormValue("email"))
		handler.setFlashCookie(c, flash)
		return c.Redirect("/signup", fiber.StatusSeeOther)
	case "/login":
		flash.LoginEmail = services.NormalizeEmail(c.FormValue("email"))
		handler.setFlashCookie(c, flash)
		return c.Redirect("/login", fiber.StatusSeeOther)
	default:
		handler.setFlashCookie(c, flash)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}
