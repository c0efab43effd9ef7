package middleware

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/repository"
)

// TenantContext holds tenant-specific information for the request
type TenantContext struct {
	SiteID    string `json:"site_id"`
	Subdomain string `json:"subdomain"`
	Plan      string `json:"plan"`
}

// Tenant resolves the tenant site from the X-Tenant-Subdomain header or the
// Host subdomain and stores a TenantContext in the gin context. Apply it to
// tenant-scoped route groups only; auth, messages and todos are user-scoped.
func Tenant(siteRepo repository.SiteRepository, baseDomain string) gin.HandlerFunc {
	subdomainRegex := regexp.MustCompile(`^([a-z0-9-]+)\.` + regexp.QuoteMeta(baseDomain) + `$`)

	return func(c *gin.Context) {
		var subdomain string
		if header := c.GetHeader("X-Tenant-Subdomain"); header != "" {
			subdomain = strings.ToLower(header)
		} else {
			host := strings.ToLower(strings.Split(c.Request.Host, ":")[0])
			matches := subdomainRegex.FindStringSubmatch(host)
			if len(matches) == 2 {
				subdomain = matches[1]
			}
		}

		if subdomain == "" {
			common.ErrorResponse(c, 400, "tenant could not be resolved")
			c.Abort()
			return
		}

		site, err := siteRepo.FindBySubdomain(subdomain)
		if err != nil {
			common.ErrorResponse(c, 404, "unknown tenant")
			c.Abort()
			return
		}

		c.Set("tenant", &TenantContext{
			SiteID:    site.ID,
			Subdomain: site.Subdomain,
			Plan:      site.Plan,
		})
		c.Next()
	}
}

// GetTenant extracts the TenantContext from the gin context
func GetTenant(c *gin.Context) *TenantContext {
	v, exists := c.Get("tenant")
	if !exists {
		return nil
	}
	if t, ok := v.(*TenantContext); ok {
		return t
	}
	return nil
}
