package proto

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Credentials is the payload of Login and Register. DisplayName is ignored
// by Login.
type Credentials struct {
	Email       string
	DisplayName string
	Password    string
}

func (c Credentials) Struct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"email":    structpb.NewStringValue(c.Email),
		"name":     structpb.NewStringValue(c.DisplayName),
		"password": structpb.NewStringValue(c.Password),
	}}
}

// CredentialsFromStruct reads the known fields; missing ones are empty.
func CredentialsFromStruct(s *structpb.Struct) Credentials {
	f := s.GetFields()
	return Credentials{
		Email:       f["email"].GetStringValue(),
		DisplayName: f["name"].GetStringValue(),
		Password:    f["password"].GetStringValue(),
	}
}

// Todo mirrors the JSON shape of a todo on the HTTP API. Numbers travel as
// doubles, which is exact for identifiers below 2^53.
type Todo struct {
	ID      uint64
	OwnerID uint64
	Title   string
	Done    bool
}

func (t Todo) Struct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":        structpb.NewNumberValue(float64(t.ID)),
		"owner_id":  structpb.NewNumberValue(float64(t.OwnerID)),
		"title":     structpb.NewStringValue(t.Title),
		"completed": structpb.NewBoolValue(t.Done),
	}}
}

func TodoFromStruct(s *structpb.Struct) Todo {
	f := s.GetFields()
	return Todo{
		ID:      uint64(f["id"].GetNumberValue()),
		OwnerID: uint64(f["owner_id"].GetNumberValue()),
		Title:   f["title"].GetStringValue(),
		Done:    f["completed"].GetBoolValue(),
	}
}

func TodoList(items []Todo) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(items))
	for _, t := range items {
		values = append(values, structpb.NewStructValue(t.Struct()))
	}
	return &structpb.ListValue{Values: values}
}

// TodosFromList fails on any element that is not a struct.
func TodosFromList(l *structpb.ListValue) ([]Todo, error) {
	items := make([]Todo, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("todo list element %d is not an object", i)
		}
		items = append(items, TodoFromStruct(s))
	}
	return items, nil
}
