package app

import (
	"quintet_backend/docs"
	"quintet_backend/internal/middleware"
	"quintet_backend/internal/model"
	"quintet_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config, a.services.blacklist, a.services.auth.UserRepo))
	{
		authGroup.POST("/auth/logout", c.auth.Logout)

		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
		a.registerAnalystRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		auth.POST("/student/signup", c.auth.SignupStudent)
		auth.POST("/student/login", c.auth.Login(model.RoleStudent))
		auth.POST("/instructor/login", c.auth.Login(model.RoleInstructor))
		auth.POST("/analyst/login", c.auth.Login(model.RoleAnalyst))
		auth.POST("/admin/login", c.auth.Login(model.RoleAdmin))

		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/universities", c.course.ListUniversities)
		public.GET("/universities/:id", c.course.GetUniversity)
		public.GET("/topics", c.course.ListTopics)
		public.GET("/textbooks", c.course.ListTextbooks)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	students := group.Group("/students")
	students.Use(middleware.RoleMiddleware(model.RoleStudent))
	{
		students.GET("/profile", c.student.GetProfile)
		students.PUT("/profile", c.student.UpdateProfile)
		students.GET("/courses", c.course.ListCourses)
		students.POST("/enroll", c.student.Enroll)
		students.DELETE("/enrollments/:course_id", c.student.Drop)
		students.GET("/my-courses", c.student.MyCourses)
		students.GET("/me/detail", c.student.MyDetail)
	}
}

func (a *App) registerInstructorRoutes(group *gin.RouterGroup, c *controllers) {
	instructors := group.Group("/instructors")
	instructors.Use(middleware.RoleMiddleware(model.RoleInstructor))
	{
		instructors.GET("/profile", c.instructor.GetProfile)
		instructors.PUT("/profile", c.instructor.UpdateProfile)
		instructors.GET("/my-courses", c.instructor.MyCourses)
		instructors.GET("/courses/:id/students", c.instructor.Roster)
		instructors.PUT("/courses/:id/grades", c.instructor.Grade)
		instructors.GET("/courses/:id/contents", c.instructor.ListContent)
		instructors.POST("/courses/:id/contents", c.instructor.CreateContent)
		instructors.POST("/courses/:id/contents/upload", c.instructor.UploadContent)
		instructors.DELETE("/courses/:id/contents/:content_id", c.instructor.DeleteContent)
	}
}

func (a *App) registerAnalystRoutes(group *gin.RouterGroup, c *controllers) {
	analyst := group.Group("/analyst")
	analyst.Use(middleware.RoleMiddleware(model.RoleAnalyst))
	{
		analyst.GET("/statistics", c.analytics.GetStatistics)
		analyst.GET("/courses/summary", c.analytics.GetCoursesSummary)
		analyst.GET("/enrollments/summary", c.analytics.GetEnrollmentsSummary)
		analyst.GET("/courses/:id", c.analytics.GetCourseDetail)
		analyst.GET("/students/:id", c.analytics.GetStudentDetail)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.admin.ListUsers)

		admin.GET("/instructors", c.admin.ListInstructors)
		admin.POST("/instructors", c.admin.CreateInstructor)
		admin.DELETE("/instructors/:id", c.admin.DeleteInstructor)

		admin.POST("/analysts", c.admin.CreateAnalyst)

		admin.GET("/students", c.admin.ListStudents)
		admin.DELETE("/students/:id", c.admin.DeleteStudent)

		admin.POST("/courses", c.admin.CreateCourse)
		admin.DELETE("/courses/:id", c.admin.DeleteCourse)
		admin.PUT("/courses/:id/instructor", c.admin.AssignInstructor)
		admin.PUT("/courses/:id/grades", c.admin.Grade)
		admin.POST("/courses/:id/topics", c.admin.AttachTopic)
		admin.POST("/courses/:id/textbooks", c.admin.AttachTextbook)

		admin.POST("/universities", c.admin.CreateUniversity)
		admin.POST("/topics", c.admin.CreateTopic)
		admin.POST("/textbooks", c.admin.CreateTextbook)
	}
}
