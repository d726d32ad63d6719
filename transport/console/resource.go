package console

import (
	"context"
	"coworking/internal/domains/resource/model"
	"coworking/internal/domains/resource/model/dto"
	"coworking/shared/failure"
	"net/http"
	"strings"
)

func (c *Console) listResources(ctx context.Context) {
	ctx, scope := c.scope(ctx, "listResources")
	defer scope.End()

	c.printResources(c.resources.Sorted(ctx))
}

func (c *Console) manageResources(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "manageResources")
	defer scope.End()

	c.printResources(c.resources.Sorted(ctx))
	c.println("------------------")
	c.println("1. Add resource")
	c.println("2. Delete resource")
	c.println("3. Update resource")

	choice, err := c.choice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return c.addResource(ctx)
	case 2:
		return c.deleteResource(ctx)
	case 3:
		return c.updateResource(ctx)
	default:
		c.println(msgInvalidChoice)
	}

	return nil
}

func (c *Console) addResource(ctx context.Context) error {
	for {
		name, err := c.askName("Enter resource name:")
		if err != nil {
			return err
		}

		resourceType, err := c.askType()
		if err != nil {
			return err
		}

		resource, err := c.resources.Add(ctx, dto.CreateResourceRequest{Name: name, Type: string(resourceType)})

		switch {
		case err == nil:
			c.printf("Resource added: %s, %s\n", resource.Name, resource.Type.DisplayName())

			return nil
		case failure.HasCode(err, http.StatusConflict):
			c.println("A resource with this name already exists, please choose another name.")
		default:
			c.println(err.Error())
		}
	}
}

func (c *Console) deleteResource(ctx context.Context) error {
	id, err := c.askID("Enter the ID of the resource to delete:")
	if err != nil {
		return err
	}

	deleted, err := c.resources.Delete(ctx, id)

	switch {
	case err != nil:
		c.println("The resource still has bookings and cannot be deleted.")
	case deleted:
		c.println("Resource deleted.")
	default:
		c.println("Resource not found.")
	}

	return nil
}

func (c *Console) updateResource(ctx context.Context) error {
	id, err := c.askID("Enter the ID of the resource to update:")
	if err != nil {
		return err
	}

	resource, ok := c.resources.Get(ctx, id)
	if !ok {
		c.println("Resource not found, please try again.")

		return nil
	}

	c.printf("Resource found: %s, %s\n", resource.Name, resource.Type.DisplayName())
	c.println("What do you want to update?")
	c.println("1. Name")
	c.println("2. Type")

	choice, err := c.choice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		for {
			name, err := c.askName("Enter the new resource name:")
			if err != nil {
				return err
			}

			updated, err := c.resources.Update(ctx, id, dto.UpdateResourceRequest{Name: name})
			if err == nil {
				c.printf("Resource name updated to: %s\n", updated.Name)

				return nil
			}

			if !failure.HasCode(err, http.StatusConflict) {
				c.println(err.Error())

				return nil
			}

			c.println("A resource with this name already exists, please choose another name.")
		}
	case 2:
		resourceType, err := c.askType()
		if err != nil {
			return err
		}

		updated, err := c.resources.Update(ctx, id, dto.UpdateResourceRequest{Type: string(resourceType)})
		if err != nil {
			c.println(err.Error())

			return nil
		}

		c.printf("Resource type updated to: %s\n", updated.Type.DisplayName())
	default:
		c.println(msgInvalidChoice)
	}

	return nil
}

// askName prompts until a non-blank name is entered.
func (c *Console) askName(prompt string) (string, error) {
	for {
		line, err := c.ask(prompt)
		if err != nil {
			return "", err
		}

		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}

		c.println("Resource name cannot be empty, please try again.")
	}
}

func (c *Console) askType() (model.Type, error) {
	for {
		line, err := c.ask("Enter resource type (W - workspace, C - conference room):")
		if err != nil {
			return "", err
		}

		if resourceType, ok := model.ParseType(line); ok {
			return resourceType, nil
		}

		c.println("Invalid resource type. Please enter W or C.")
	}
}
