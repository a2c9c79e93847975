package cli

import (
	"context"
	"strings"
)

// Add creates a todo. The title is taken from args or, when empty, asked
// for interactively.
func (a *App) Add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		var err error
		if title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
			return err
		}
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	todo, err := a.client.AddTodo(ctx, title)
	if err != nil {
		printlnFn(a.out, "Add failed:", err)
		return err
	}

	printlnFn(a.out, "Added", todo.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	items, err := a.client.ListTodos(ctx)
	if err != nil {
		printlnFn(a.out, "List failed:", err)
		return err
	}

	if len(items) == 0 {
		printlnFn(a.out, "No todos")
		return nil
	}
	for _, t := range items {
		mark := " "
		if t.Done {
			mark = "x"
		}
		printlnFn(a.out, "["+mark+"]", t.ID, t.Title)
	}
	return nil
}
