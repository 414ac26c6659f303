package middleware

import (
	"dojo/database"
	"dojo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Principal is the authenticated caller, resolved from the JWT user id
// against the users table. Role is one of models.RoleAdmin/RoleStudent.
type Principal struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool   { return p.Role == models.RoleAdmin }
func (p Principal) IsStudent() bool { return p.Role == models.RoleStudent }

// GetPrincipal returns the principal stored by RequireRole middleware
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals("principal").(Principal)
	return p, ok
}

// RequireRole loads the authenticated user and checks their role.
// An empty role only authenticates, without restricting the role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		err := database.Database.Db.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking role!", nil)
		}

		if role != "" && user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("principal", Principal{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		return c.Next()
	}
}

// RequireAdmin restricts a route to admin users
func RequireAdmin() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

// RequireStudent restricts a route to student users
func RequireStudent() fiber.Handler {
	return RequireRole(models.RoleStudent)
}

// RequireAuth authenticates without restricting the role
func RequireAuth() fiber.Handler {
	return RequireRole("")
}
