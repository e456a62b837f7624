package httpserver

import (
	"context"
)

// setupAPIRoutes mounts every registered domain under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(db, l)
//  2. Create UseCase:      uc := mydomainUC.New(l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(l, uc)
//  4. Append a registrar:  func(api *gin.RouterGroup) { mydomainHTTP.RegisterRoutes(api, h, mw) }
func (srv HTTPServer) setupAPIRoutes(ctx context.Context) {
	if len(srv.apiRegistrars) == 0 {
		srv.l.Infof(ctx, "No API domains configured")
		return
	}

	api := srv.gin.Group("/api/v1")
	for _, register := range srv.apiRegistrars {
		register(api)
	}
	srv.l.Infof(ctx, "API routes registered under /api/v1 (%d domains)", len(srv.apiRegistrars))
}
