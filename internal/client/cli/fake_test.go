package cli

import (
	"context"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

type fakeClient struct {
	regEmail, regName string
	regPass           []byte
	regErr            error

	loginEmail string
	loginPass  []byte
	loginErr   error

	loggedOut bool

	added  []string
	addErr error

	items   []pb.Todo
	listErr error

	pingErr error
	closed  bool
}

func (f *fakeClient) Register(_ context.Context, email, name string, password []byte) error {
	f.regEmail, f.regName, f.regPass = email, name, append([]byte(nil), password...)
	return f.regErr
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	return f.loginErr
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) AddTodo(_ context.Context, title string) (pb.Todo, error) {
	if f.addErr != nil {
		return pb.Todo{}, f.addErr
	}
	f.added = append(f.added, title)
	return pb.Todo{ID: uint64(len(f.added)), Title: title}, nil
}

func (f *fakeClient) ListTodos(context.Context) ([]pb.Todo, error) {
	return f.items, f.listErr
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}
