package routes

import (
	"github.com/ST10329226/Fakebook-SQL-MVC/handlers/posts"
	"github.com/ST10329226/Fakebook-SQL-MVC/handlers/posts/comments"
	"github.com/ST10329226/Fakebook-SQL-MVC/handlers/posts/likes"
	"github.com/ST10329226/Fakebook-SQL-MVC/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Public browse routes
	r.GET("/posts", posts.GetAllPosts)
	r.GET("/posts/:id", posts.GetPostByID)
	r.GET("/posts/:id/comments", comments.GetCommentsByPostID)

	// Write routes
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)
		postsRoutes.POST("/:id/comments", comments.CreateComment)
		postsRoutes.POST("/:id/likes", likes.CreateLike)
	}
}
