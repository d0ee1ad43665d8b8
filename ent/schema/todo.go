package schema

import (
	"fmt"
	"unicode/utf8"

	"todo-api-backend/ent/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
)

// TitleMaxLen is the maximum number of characters in a todo title.
const TitleMaxLen = 200

// Todo holds the schema definition for the Todo entity.
type Todo struct {
	ent.Schema
}

// Fields of the Todo.
func (Todo) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			SchemaType(map[string]string{
				dialect.MySQL:    fmt.Sprintf("varchar(%d)", TitleMaxLen),
				dialect.Postgres: fmt.Sprintf("varchar(%d)", TitleMaxLen),
			}).
			NotEmpty().
			Validate(maxRuneLen(TitleMaxLen)),
		field.Bool("is_completed").
			Default(false).
			StructTag(`json:"is_completed"`),
	}
}

// Edges of the Todo.
func (Todo) Edges() []ent.Edge {
	return nil
}

// Mixin of the Todo.
func (Todo) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewDatetime(),
	}
}

// maxRuneLen counts characters rather than bytes.
func maxRuneLen(n int) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return fmt.Errorf("value is more than the max length (%d characters)", n)
		}
		return nil
	}
}
