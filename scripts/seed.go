// 导入演示数据：大学、主题、教材、讲师、学生、课程与选课记录
//
// 数据库表需要已经存在（先以 debug 模式启动一次，或运行 -migrate-only）。
//
// 用法: go run scripts/seed.go [-config configs] [-data configs/seed.yaml]

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"quintet_backend/internal/config"
	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/database"
	"quintet_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Universities []model.CreateUniversityRequest `yaml:"universities"`
	Topics       []string                        `yaml:"topics"`
	Textbooks    []model.CreateTextbookRequest   `yaml:"textbooks"`
	Instructors  []seedInstructor                `yaml:"instructors"`
	Students     []seedStudent                   `yaml:"students"`
	Courses      []seedCourse                    `yaml:"courses"`
	Enrollments  []seedEnrollment                `yaml:"enrollments"`
}

type seedInstructor struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Name      string `yaml:"name"`
	Expertise string `yaml:"expertise"`
}

type seedStudent struct {
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Age        int    `yaml:"age"`
	SkillLevel string `yaml:"skill_level"`
	Category   string `yaml:"category"`
	Country    string `yaml:"country"`
}

type seedCourse struct {
	Name        string `yaml:"name"`
	Duration    string `yaml:"duration"`
	ProgramType string `yaml:"program_type"`
	University  int    `yaml:"university"`
	Instructor  *int   `yaml:"instructor"`
	Topics      []int  `yaml:"topics"`
	Textbooks   []int  `yaml:"textbooks"`
}

type seedEnrollment struct {
	Student int      `yaml:"student"`
	Course  int      `yaml:"course"`
	Score   *float64 `yaml:"score"`
}

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	dataPath := flag.String("data", "configs/seed.yaml", "演示数据文件")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("无法读取数据文件: %v", err)
	}
	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("解析数据文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	auth := service.NewAuthService(userRepo, service.NewMemoryTokenBlacklist(), cfg)
	catalog := service.NewCatalogService(catalogRepo)
	courses := service.NewCourseService(courseRepo, catalogRepo, instructorRepo)
	enrollments := service.NewEnrollmentService(db, studentRepo, instructorRepo, courseRepo, enrollmentRepo, repository.NewContentRepository(db), repository.NewCascadeRepository(db), nil)
	grading := service.NewGradingService(db, enrollmentRepo, courseRepo, cfg.Grading)

	ctx := context.Background()

	universityIDs := make([]uint, len(data.Universities))
	for i := range data.Universities {
		u, err := catalog.CreateUniversity(ctx, &data.Universities[i])
		if err != nil {
			log.Fatalf("创建大学失败: %v", err)
		}
		universityIDs[i] = u.ID
	}

	topicIDs := make([]uint, len(data.Topics))
	for i, name := range data.Topics {
		t, err := catalog.CreateTopic(ctx, &model.CreateTopicRequest{Name: name})
		if err != nil {
			log.Fatalf("创建主题失败: %v", err)
		}
		topicIDs[i] = t.ID
	}

	textbookIDs := make([]uint, len(data.Textbooks))
	for i := range data.Textbooks {
		t, err := catalog.CreateTextbook(ctx, &data.Textbooks[i])
		if err != nil {
			log.Fatalf("创建教材失败: %v", err)
		}
		textbookIDs[i] = t.ID
	}

	instructorIDs := make([]uint, len(data.Instructors))
	for i, in := range data.Instructors {
		user, err := auth.CreateInstructor(ctx, &model.CreateInstructorRequest{
			Email:     in.Email,
			Password:  in.Password,
			Name:      in.Name,
			Expertise: in.Expertise,
		})
		if err != nil {
			log.Fatalf("创建讲师 %s 失败: %v", in.Email, err)
		}
		instructorIDs[i] = user.Instructor.ID
	}

	studentIDs := make([]uint, len(data.Students))
	for i, st := range data.Students {
		user, err := auth.SignupStudent(ctx, &model.StudentSignupRequest{
			Email:      st.Email,
			Password:   st.Password,
			Age:        st.Age,
			SkillLevel: st.SkillLevel,
			Category:   st.Category,
			Country:    st.Country,
		})
		if err != nil {
			log.Fatalf("创建学生 %s 失败: %v", st.Email, err)
		}
		studentIDs[i] = user.Student.ID
	}

	courseIDs := make([]uint, len(data.Courses))
	for i, c := range data.Courses {
		req := &model.CreateCourseRequest{
			Name:         c.Name,
			Duration:     c.Duration,
			ProgramType:  c.ProgramType,
			UniversityID: universityIDs[c.University],
		}
		if c.Instructor != nil {
			id := instructorIDs[*c.Instructor]
			req.InstructorID = &id
		}
		course, err := courses.Create(ctx, req)
		if err != nil {
			log.Fatalf("创建课程 %s 失败: %v", c.Name, err)
		}
		courseIDs[i] = course.ID

		for _, t := range c.Topics {
			if err := courses.AttachTopic(ctx, course.ID, topicIDs[t]); err != nil && err != util.ErrAlreadyLinked {
				log.Fatalf("关联主题失败: %v", err)
			}
		}
		for _, t := range c.Textbooks {
			if err := courses.AttachTextbook(ctx, course.ID, textbookIDs[t]); err != nil && err != util.ErrAlreadyLinked {
				log.Fatalf("关联教材失败: %v", err)
			}
		}
	}

	for _, e := range data.Enrollments {
		studentID, courseID := studentIDs[e.Student], courseIDs[e.Course]
		if _, err := enrollments.Enroll(ctx, studentID, courseID); err != nil {
			log.Fatalf("选课失败 (student=%d, course=%d): %v", studentID, courseID, err)
		}
		if e.Score != nil {
			if _, err := grading.Grade(ctx, courseID, studentID, *e.Score); err != nil {
				log.Fatalf("评分失败 (student=%d, course=%d): %v", studentID, courseID, err)
			}
		}
	}

	log.Printf("完成！大学 %d，讲师 %d，学生 %d，课程 %d，选课 %d",
		len(universityIDs), len(instructorIDs), len(studentIDs), len(courseIDs), len(data.Enrollments))
}
