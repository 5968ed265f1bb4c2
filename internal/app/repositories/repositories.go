package repositories

import "github.com/Masterminds/squirrel"

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(),
	}
}

// statementBuilder renders squirrel queries with PostgreSQL placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
