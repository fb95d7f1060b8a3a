package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/todo-api/internal/core/domain"
)

const todosCollection = "todos"
const todosSequence = "todos"

type TodoRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{db: db, coll: db.Collection(todosCollection)}
}

type todoDoc struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Priority    int    `bson:"priority"`
	Complete    bool   `bson:"complete"`
	OwnerID     int64  `bson:"owner_id"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func toTodoDoc(t *domain.Todo) todoDoc {
	return todoDoc{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}
}

func (d todoDoc) toDomain() domain.Todo {
	return domain.Todo{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Complete:    d.Complete,
		OwnerID:     d.OwnerID,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *TodoRepository) list(ctx context.Context, filter bson.M) ([]domain.Todo, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []domain.Todo{}
	for cursor.Next(ctx) {
		var doc todoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Todo, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]domain.Todo, error) {
	return r.list(ctx, bson.M{})
}

func (r *TodoRepository) FindOwned(ctx context.Context, id, ownerID int64) (*domain.Todo, error) {
	var doc todoDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	todo := doc.toDomain()
	return &todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	id, err := nextID(ctx, r.db, todosSequence)
	if err != nil {
		return nil, err
	}

	created := *todo
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, toTodoDoc(&created)); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &created, nil
}

func (r *TodoRepository) UpdateOwned(ctx context.Context, todo *domain.Todo) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": todo.ID, "owner_id": todo.OwnerID}, toTodoDoc(todo))
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
