// Package stats provides pure reductions over blog lists. No state, no
// store access; callers pass whatever slice they already hold.
package stats

import "bloglist/internal/models"

// AuthorBlogs pairs an author with how many blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with their accumulated likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all blogs.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// Favorite returns the blog with the most likes, nil for an empty list.
// Ties keep the earlier entry.
func Favorite(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	fav := &blogs[0]
	for i := range blogs[1:] {
		if blogs[i+1].Likes > fav.Likes {
			fav = &blogs[i+1]
		}
	}
	return fav
}

// MostBlogs returns the author with the largest number of blogs, nil for
// an empty list.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int, len(blogs))
	for _, b := range blogs {
		counts[b.Author]++
	}

	top := &AuthorBlogs{}
	for _, b := range blogs {
		if n := counts[b.Author]; n > top.Blogs {
			top.Author = b.Author
			top.Blogs = n
		}
	}
	return top
}

// MostLikes returns the author whose blogs accumulated the most likes,
// nil for an empty list.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int, len(blogs))
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}

	top := &AuthorLikes{Likes: -1}
	for _, b := range blogs {
		if n := likes[b.Author]; n > top.Likes {
			top.Author = b.Author
			top.Likes = n
		}
	}
	return top
}
