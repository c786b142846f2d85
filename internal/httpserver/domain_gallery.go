package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	galleryHTTP "sayyes-srv/internal/gallery/delivery/http"
	"sayyes-srv/internal/gallery/repository"
	galleryMinio "sayyes-srv/internal/gallery/repository/minio"
	galleryPostgre "sayyes-srv/internal/gallery/repository/postgre"
	galleryRedis "sayyes-srv/internal/gallery/repository/redis"
	galleryUsecase "sayyes-srv/internal/gallery/usecase"
)

func (srv *HTTPServer) setupGalleryDomain(ctx context.Context, r *gin.RouterGroup) error {
	var catalogs []repository.Catalog
	if srv.postgresDB != nil {
		catalogs = append(catalogs, galleryPostgre.New(srv.postgresDB, srv.l))
	}
	if srv.minio != nil {
		catalogs = append(catalogs, galleryMinio.New(srv.minio, srv.l))
	}

	var cache repository.CurateCache
	if srv.redis != nil {
		cache = galleryRedis.New(srv.redis, srv.l)
	}

	srv.galleryUC = galleryUsecase.New(srv.l, cache, catalogs...)

	handler := galleryHTTP.New(srv.l, srv.galleryUC, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Gallery domain registered (catalogs=%d, cache=%t)", len(catalogs), cache != nil)
	return nil
}
