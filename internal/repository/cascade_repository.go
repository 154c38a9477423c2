package repository

import (
	"context"
	"fmt"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

// cascadeRoot 被删除的父记录，UserID 仅学生/讲师有值
type cascadeRoot struct {
	ID     uint
	UserID uint
}

type cascadeStep struct {
	Table string
	run   func(tx *gorm.DB, root cascadeRoot) *gorm.DB
}

// CascadePlan 删除一条父记录时按顺序执行的子表清理步骤，最后一步删除父记录本身。
// 顺序保证任一步骤执行后都不会留下指向已删除行的外键。
type CascadePlan struct {
	Name  string
	load  func(tx *gorm.DB, id uint) (cascadeRoot, error)
	Steps []cascadeStep
}

func (p CascadePlan) Tables() []string {
	tables := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		tables[i] = s.Table
	}
	return tables
}

func deleteWhere(value interface{}, column string) func(*gorm.DB, cascadeRoot) *gorm.DB {
	return func(tx *gorm.DB, root cascadeRoot) *gorm.DB {
		return tx.Where(column+" = ?", root.ID).Delete(value)
	}
}

func loadByID(value interface{}) func(*gorm.DB, uint) (cascadeRoot, error) {
	return func(tx *gorm.DB, id uint) (cascadeRoot, error) {
		var root cascadeRoot
		err := tx.Model(value).Select("id").Where("id = ?", id).Take(&root).Error
		return root, err
	}
}

func loadOwnedByUser(value interface{}) func(*gorm.DB, uint) (cascadeRoot, error) {
	return func(tx *gorm.DB, id uint) (cascadeRoot, error) {
		var root cascadeRoot
		err := tx.Model(value).Select("id, user_id").Where("id = ?", id).Take(&root).Error
		return root, err
	}
}

func deleteOwningUser(tx *gorm.DB, root cascadeRoot) *gorm.DB {
	return tx.Where("id = ?", root.UserID).Delete(&model.User{})
}

var CourseDeletionPlan = CascadePlan{
	Name: "course",
	load: loadByID(&model.Course{}),
	Steps: []cascadeStep{
		{Table: "enrollments", run: deleteWhere(&model.Enrollment{}, "course_id")},
		{Table: "contents", run: deleteWhere(&model.Content{}, "course_id")},
		{Table: "course_topics", run: deleteWhere(&model.CourseTopic{}, "course_id")},
		{Table: "textbooks_used", run: deleteWhere(&model.TextbookUsed{}, "course_id")},
		{Table: "courses", run: deleteWhere(&model.Course{}, "id")},
	},
}

var StudentDeletionPlan = CascadePlan{
	Name: "student",
	load: loadOwnedByUser(&model.Student{}),
	Steps: []cascadeStep{
		{Table: "enrollments", run: deleteWhere(&model.Enrollment{}, "student_id")},
		{Table: "students", run: deleteWhere(&model.Student{}, "id")},
		{Table: "users", run: deleteOwningUser},
	},
}

// InstructorDeletionPlan 课程保留，只解除讲师关联
var InstructorDeletionPlan = CascadePlan{
	Name: "instructor",
	load: loadOwnedByUser(&model.Instructor{}),
	Steps: []cascadeStep{
		{Table: "courses", run: func(tx *gorm.DB, root cascadeRoot) *gorm.DB {
			return tx.Model(&model.Course{}).
				Where("instructor_id = ?", root.ID).
				Update("instructor_id", nil)
		}},
		{Table: "instructors", run: deleteWhere(&model.Instructor{}, "id")},
		{Table: "users", run: deleteOwningUser},
	},
}

// CascadeResult 每一步影响的行数
type CascadeResult struct {
	Plan     string
	Affected map[string]int64
}

type CascadeRepository struct {
	DB *gorm.DB
}

func NewCascadeRepository(db *gorm.DB) *CascadeRepository {
	return &CascadeRepository{DB: db}
}

func (r *CascadeRepository) WithTx(tx *gorm.DB) *CascadeRepository {
	return &CascadeRepository{DB: tx}
}

// Execute 按计划逐步删除。父记录不存在时返回 gorm.ErrRecordNotFound 且不做任何修改；
// 调用方负责把它放在同一个事务里。
func (r *CascadeRepository) Execute(ctx context.Context, plan CascadePlan, id uint) (*CascadeResult, error) {
	tx := r.DB.WithContext(ctx)

	root, err := plan.load(tx, id)
	if err != nil {
		return nil, err
	}

	result := &CascadeResult{Plan: plan.Name, Affected: make(map[string]int64, len(plan.Steps))}
	for _, step := range plan.Steps {
		res := step.run(tx, root)
		if res.Error != nil {
			return nil, fmt.Errorf("cascade %s: delete from %s: %w", plan.Name, step.Table, res.Error)
		}
		result.Affected[step.Table] += res.RowsAffected
	}
	return result, nil
}
