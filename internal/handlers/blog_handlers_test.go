package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

func boolPtr(b bool) *bool { return &b }

func TestBlogPosts_PublishedFilterAndSlug(t *testing.T) {
	store := newTestStore()
	h := &BlogHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/blog", transport.CreateBlogPostRequest{
		Title: "Draft", Slug: "draft", Author: "Isabella Martinez",
	})
	require.NoError(t, h.CreateBlogPost(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = doJSONRequest(t, http.MethodPost, "/api/blog", transport.CreateBlogPostRequest{
		Title: "The Art of Layering Fragrances", Slug: "art-of-layering",
		Author: "Isabella Martinez", Published: boolPtr(true),
	})
	require.NoError(t, h.CreateBlogPost(c))
	var published models.BlogPost
	decodeJSON(t, rec, &published)
	require.True(t, published.Published)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/blog?published=true", nil)
	require.NoError(t, h.GetBlogPosts(c))
	var visible []models.BlogPost
	decodeJSON(t, rec, &visible)
	require.Len(t, visible, 1)
	require.Equal(t, published.ID, visible[0].ID)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/blog", nil)
	require.NoError(t, h.GetBlogPosts(c))
	var all []models.BlogPost
	decodeJSON(t, rec, &all)
	require.Len(t, all, 2)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/blog/slug/art-of-layering", nil)
	c.SetParamNames("slug")
	c.SetParamValues("art-of-layering")
	require.NoError(t, h.GetBlogPostBySlug(c))
	var bySlug models.BlogPost
	decodeJSON(t, rec, &bySlug)
	require.Equal(t, published.ID, bySlug.ID)

	_, c = doJSONRequest(t, http.MethodGet, "/api/blog/slug/unknown", nil)
	c.SetParamNames("slug")
	c.SetParamValues("unknown")
	err := h.GetBlogPostBySlug(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestPatchBlogPost(t *testing.T) {
	store := newTestStore()
	h := &BlogHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/blog", transport.CreateBlogPostRequest{
		Title: "Draft", Slug: "draft", Author: "Alexandre Dubois",
	})
	require.NoError(t, h.CreateBlogPost(c))
	var created models.BlogPost
	decodeJSON(t, rec, &created)

	rec, c = doJSONRequest(t, http.MethodPatch, "/api/blog/"+created.ID, transport.PatchBlogPostRequest{
		Published: boolPtr(true),
	})
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.PatchBlogPost(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var patched models.BlogPost
	decodeJSON(t, rec, &patched)
	require.True(t, patched.Published)
	require.Equal(t, "Draft", patched.Title)
}

func TestDeleteBlogPost(t *testing.T) {
	store := newTestStore()
	h := &BlogHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/blog", transport.CreateBlogPostRequest{
		Title: "Draft", Slug: "draft", Author: "a",
	})
	require.NoError(t, h.CreateBlogPost(c))
	var created models.BlogPost
	decodeJSON(t, rec, &created)

	rec, c = doJSONRequest(t, http.MethodDelete, "/api/blog/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.DeleteBlogPost(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, c = doJSONRequest(t, http.MethodDelete, "/api/blog/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	err := h.DeleteBlogPost(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}
