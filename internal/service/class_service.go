package service

import (
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"
)

// ClassService 班级、学员与体测记录。报告生成器只读这三个存储，
// 写入口在这里。
type ClassService struct {
	Classes  *repository.ClassRepository
	Students *repository.StudentRepository
	Tests    *repository.FitnessTestRepository
}

func NewClassService(
	classes *repository.ClassRepository,
	students *repository.StudentRepository,
	tests *repository.FitnessTestRepository,
) *ClassService {
	return &ClassService{Classes: classes, Students: students, Tests: tests}
}

func (s *ClassService) ListClasses() ([]model.Class, error) {
	return s.Classes.List()
}

func (s *ClassService) GetClass(id string) (*model.Class, error) {
	return s.Classes.Get(id)
}

func (s *ClassService) SaveClass(c *model.Class) error {
	model.NormalizeClass(c)
	return s.Classes.Save(c)
}

func (s *ClassService) DeleteClass(id string) error {
	return s.Classes.Delete(id)
}

func (s *ClassService) ListStudents(classID string) ([]model.Student, error) {
	if classID != "" {
		return s.Students.ListByClass(classID)
	}
	return s.Students.List()
}

func (s *ClassService) GetStudent(id string) (*model.Student, error) {
	return s.Students.Get(id)
}

func (s *ClassService) SaveStudent(st *model.Student) error {
	model.NormalizeStudent(st)
	return s.Students.Save(st)
}

func (s *ClassService) DeleteStudent(id string) error {
	return s.Students.Delete(id)
}

func (s *ClassService) ListFitnessTests(studentID string) ([]model.FitnessTest, error) {
	return s.Tests.ListByStudent(studentID)
}

func (s *ClassService) SaveFitnessTest(t *model.FitnessTest) error {
	model.NormalizeFitnessTest(t)
	if t.TestedAt.IsZero() {
		t.TestedAt = time.Now()
	}
	return s.Tests.Save(t)
}

func (s *ClassService) DeleteFitnessTest(id string) error {
	return s.Tests.Delete(id)
}
