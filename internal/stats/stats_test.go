package stats

import (
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleBlogs = []models.Blog{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  int
	}{
		{"empty list", nil, 0},
		{"single blog", sampleBlogs[:1], 7},
		{"full list", sampleBlogs, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestFavorite(t *testing.T) {
	assert.Nil(t, Favorite(nil))

	fav := Favorite(sampleBlogs)
	require.NotNil(t, fav)
	assert.Equal(t, "Canonical string reduction", fav.Title)
	assert.Equal(t, 12, fav.Likes)
}

func TestMostBlogs(t *testing.T) {
	assert.Nil(t, MostBlogs(nil))

	top := MostBlogs(sampleBlogs)
	require.NotNil(t, top)
	assert.Equal(t, "Robert C. Martin", top.Author)
	assert.Equal(t, 3, top.Blogs)
}

func TestMostLikes(t *testing.T) {
	assert.Nil(t, MostLikes(nil))

	top := MostLikes(sampleBlogs)
	require.NotNil(t, top)
	assert.Equal(t, "Edsger W. Dijkstra", top.Author)
	assert.Equal(t, 17, top.Likes)
}

func TestMostLikesZeroLikeAuthors(t *testing.T) {
	blogs := []models.Blog{
		{Title: "a", Author: "Only Author", Likes: 0},
	}
	top := MostLikes(blogs)
	require.NotNil(t, top)
	assert.Equal(t, "Only Author", top.Author)
	assert.Equal(t, 0, top.Likes)
}
