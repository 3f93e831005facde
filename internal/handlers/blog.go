package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/mykafka"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/transport"
)

type BlogHandler struct {
	Store    storage.Store
	Producer *mykafka.Producer
}

func (h *BlogHandler) GetBlogPosts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.get_posts")

	var (
		items []models.BlogPost
		err   error
	)
	if c.QueryParam("published") == "true" {
		items, err = h.Store.GetPublishedBlogPosts(ctx)
	} else {
		items, err = h.Store.GetBlogPosts(ctx)
	}
	if err != nil {
		l.Error("get_posts_failed", "status", 500, "reason", "cannot list posts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list posts")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *BlogHandler) GetBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.get_post")

	post, err := h.Store.GetBlogPost(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("get_post_failed", "status", 404, "reason", "post not found")
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		l.Error("get_post_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get post")
	}

	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) GetBlogPostBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.get_post_by_slug")

	post, err := h.Store.GetBlogPostBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("get_post_by_slug_failed", "status", 404, "reason", "post not found")
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		l.Error("get_post_by_slug_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get post")
	}

	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreateBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.create_post")

	var req transport.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_post_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	post := models.BlogPost{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Category: req.Category,
		Author:   req.Author,
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	created, err := h.Store.CreateBlogPost(ctx, &post)
	if err != nil {
		l.Error("create_post_failed", "status", 500, "reason", "cannot store post", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store post")
	}

	publish(c, h.Producer, "blog_events", created.ID, map[string]any{
		"type":   "blog_post_created",
		"postID": created.ID,
		"slug":   created.Slug,
	})

	l.Info("create_post_success", "post_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *BlogHandler) PatchBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.patch_post")

	var req transport.PatchBlogPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_post_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	post, err := h.Store.PatchBlogPost(ctx, req, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("patch_post_failed", "status", 404, "reason", "post not found")
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		l.Error("patch_post_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update post")
	}

	publish(c, h.Producer, "blog_events", post.ID, map[string]any{
		"type":   "blog_post_updated",
		"postID": post.ID,
		"slug":   post.Slug,
	})

	l.Info("patch_post_success", "post_id", post.ID)
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeleteBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blog.delete_post")

	id := c.Param("id")
	if err := h.Store.DeleteBlogPost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("delete_post_failed", "status", 404, "reason", "post not found")
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		l.Error("delete_post_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete post")
	}

	publish(c, h.Producer, "blog_events", id, map[string]any{
		"type":   "blog_post_deleted",
		"postID": id,
	})

	l.Info("delete_post_success", "post_id", id)
	return c.NoContent(http.StatusNoContent)
}
