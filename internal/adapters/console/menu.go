// Package console implements the numbered interactive menu over any
// io.Reader / io.Writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"ricettario/internal/application"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

// DoneSentinel ends ingredient entry.
const DoneSentinel = "done"

// errInputClosed unwinds the menu when the reader hits EOF.
var errInputClosed = errors.New("input closed")

// Menu is the interactive recipe menu.
type Menu struct {
	repo       ports.RecipeRepository
	classifier domain.Classifier
	in         *bufio.Reader
	out        io.Writer
}

// New creates a menu reading answers from in and writing prompts to out.
func New(repo ports.RecipeRepository, classifier domain.Classifier, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		repo:       repo,
		classifier: classifier,
		in:         bufio.NewReader(in),
		out:        out,
	}
}

// Run loops over the main menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMainMenu()

		choice, err := m.prompt("Your choice: ")
		if err != nil {
			return m.quit(err)
		}

		switch strings.ToLower(choice) {
		case "1":
			err = m.create(ctx)
		case "2":
			err = m.viewAll(ctx)
		case "3":
			err = m.search(ctx)
		case "4":
			err = m.edit(ctx)
		case "5":
			err = m.delete(ctx)
		case "quit", "q":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Valid choices: 1, 2, 3, 4, 5, or 'quit'")
			continue
		}

		if errors.Is(err, errInputClosed) {
			return m.quit(err)
		}
		if err != nil {
			logging.Debug().Err(err).Str("choice", choice).Msg("menu operation failed")
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) quit(err error) error {
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(m.out, "\nGoodbye!")
		return nil
	}
	return err
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "RECIPE APPLICATION")
	fmt.Fprintln(m.out, "1. Create a new recipe")
	fmt.Fprintln(m.out, "2. View all recipes")
	fmt.Fprintln(m.out, "3. Search for recipes by ingredients")
	fmt.Fprintln(m.out, "4. Edit a recipe")
	fmt.Fprintln(m.out, "5. Delete a recipe")
	fmt.Fprintln(m.out, "Type 'quit' to quit the application")
}

// prompt writes label and returns the trimmed answer.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readName(label string) (string, error) {
	for {
		name, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if err := checkName(name); err != nil {
			fmt.Fprintln(m.out, err.Message)
			continue
		}
		return name, nil
	}
}

func checkName(name string) *application.ValidationError {
	switch {
	case name == "":
		return &application.ValidationError{Field: "name", Message: "Recipe name cannot be empty."}
	case utf8.RuneCountInString(name) > application.MaxFieldLength:
		return &application.ValidationError{Field: "name", Message: "Recipe name cannot exceed 50 characters."}
	case !application.IsRecipeName(name):
		return &application.ValidationError{Field: "name", Message: "Recipe name should contain only letters, digits and spaces."}
	}
	return nil
}

func (m *Menu) readCookingTime(label string) (int, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		minutes, err := commands.ParseCookingTime(answer)
		if err != nil {
			fmt.Fprintln(m.out, err)
			continue
		}
		return minutes, nil
	}
}

// readIngredients collects ingredient names until the done sentinel. At
// least one ingredient is required.
func (m *Menu) readIngredients() ([]string, error) {
	fmt.Fprintf(m.out, "Enter ingredients one per line. Type '%s' when finished.\n", DoneSentinel)

	var ingredients []string
	for {
		answer, err := m.prompt(fmt.Sprintf("Ingredient %d: ", len(ingredients)+1))
		if err != nil {
			return nil, err
		}

		switch {
		case strings.EqualFold(answer, DoneSentinel):
			if len(ingredients) == 0 {
				fmt.Fprintln(m.out, "At least one ingredient is required.")
				continue
			}
			return ingredients, nil
		case answer == "":
			fmt.Fprintln(m.out, "Ingredient cannot be empty.")
		case utf8.RuneCountInString(answer) > application.MaxFieldLength:
			fmt.Fprintln(m.out, "Ingredient cannot exceed 50 characters.")
		case !application.IsIngredientName(answer):
			fmt.Fprintln(m.out, "Ingredient should contain only letters and spaces.")
		case contains(ingredients, answer):
			fmt.Fprintf(m.out, "%q is already in the list.\n", answer)
		default:
			ingredients = append(ingredients, answer)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (m *Menu) create(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nCREATE NEW RECIPE")

	name, err := m.readName("Enter recipe name: ")
	if err != nil {
		return err
	}
	minutes, err := m.readCookingTime("Enter cooking time (in minutes): ")
	if err != nil {
		return err
	}
	ingredients, err := m.readIngredients()
	if err != nil {
		return err
	}

	result, err := commands.NewCreateRecipeCommand(m.repo, m.classifier, name, minutes, ingredients).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Recipe '%s' added successfully! Difficulty: %s\n", result.Recipe.Name, result.Recipe.Difficulty)
	return nil
}

func (m *Menu) viewAll(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nALL RECIPES")

	recipes, err := commands.NewListRecipesCommand(m.repo).Execute(ctx)
	if err != nil {
		return err
	}
	WriteRecipes(m.out, recipes)
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nSEARCH BY INGREDIENTS")

	catalog, err := commands.NewListIngredientsCommand(m.repo).Execute(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		fmt.Fprintln(m.out, "No recipes found.")
		return nil
	}

	fmt.Fprintln(m.out, "Available ingredients:")
	WriteCatalog(m.out, catalog)
	fmt.Fprintln(m.out, "Enter the numbers of ingredients to search for, separated by spaces (e.g. 1 3 5).")

	var picked []string
	for {
		answer, err := m.prompt("Your selection: ")
		if err != nil {
			return err
		}
		picked, err = commands.ResolveSelection(catalog, answer)
		if err == nil {
			break
		}
		var selErr *application.SelectionError
		switch {
		case errors.Is(err, application.ErrEmptySelection):
			fmt.Fprintln(m.out, "Please enter at least one number.")
		case errors.As(err, &selErr):
			fmt.Fprintf(m.out, "Invalid numbers: %v. Please enter numbers between 1 and %d.\n", selErr.Invalid, selErr.Max)
		default:
			fmt.Fprintln(m.out, "Please enter valid numbers separated by spaces.")
		}
	}

	fmt.Fprintf(m.out, "Searching for recipes containing: %s\n", domain.FormatIngredientList(picked))
	recipes, err := commands.NewSearchByIngredientsCommand(m.repo, picked...).Execute(ctx)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		fmt.Fprintln(m.out, "No recipes found containing all selected ingredients.")
		return nil
	}
	WriteRecipes(m.out, recipes)
	return nil
}

// pickRecipe lists recipes and asks for an existing ID. It returns nil
// when there is nothing to pick.
func (m *Menu) pickRecipe(ctx context.Context, label string) (*domain.Recipe, error) {
	recipes, err := commands.NewListRecipesCommand(m.repo).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		fmt.Fprintln(m.out, "No recipes found.")
		return nil, nil
	}

	fmt.Fprintln(m.out, "Available recipes:")
	WriteIndex(m.out, recipes)

	for {
		answer, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		id, err := strconv.ParseInt(answer, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintln(m.out, "Please enter a valid ID number.")
			continue
		}
		r, err := commands.NewGetRecipeCommand(m.repo, id).Execute(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, "Recipe with that ID not found. Please try again.")
			continue
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func (m *Menu) edit(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nEDIT RECIPE")

	r, err := m.pickRecipe(ctx, "Enter the ID of the recipe to edit: ")
	if err != nil || r == nil {
		return err
	}

	fmt.Fprintln(m.out, "Current recipe details:")
	fmt.Fprintf(m.out, "1. Name: %s\n", r.Name)
	fmt.Fprintf(m.out, "2. Cooking Time: %d minutes\n", r.CookingTime)
	fmt.Fprintf(m.out, "3. Ingredients: %s\n", domain.FormatIngredientList(r.Ingredients))

	var field application.EditField
	for {
		answer, err := m.prompt("Which attribute would you like to edit? (1-3): ")
		if err != nil {
			return err
		}
		if field, err = application.ParseEditField(answer); err == nil {
			break
		}
		fmt.Fprintln(m.out, "Please enter 1, 2, or 3.")
	}

	var value string
	switch field {
	case application.FieldName:
		if value, err = m.readName("Enter new recipe name: "); err != nil {
			return err
		}
	case application.FieldCookingTime:
		minutes, err := m.readCookingTime("Enter new cooking time (in minutes): ")
		if err != nil {
			return err
		}
		value = strconv.Itoa(minutes)
	case application.FieldIngredients:
		ingredients, err := m.readIngredients()
		if err != nil {
			return err
		}
		value = domain.FormatIngredientList(ingredients)
	}

	result, err := commands.NewEditRecipeCommand(m.repo, m.classifier, r.ID, field, value).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, result.Message)
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nDELETE RECIPE")

	r, err := m.pickRecipe(ctx, "Enter the ID of the recipe to delete: ")
	if err != nil || r == nil {
		return err
	}

	fmt.Fprintf(m.out, "You are about to delete: %s (%s)\n", r.Name, domain.FormatIngredientList(r.Ingredients))
	for {
		answer, err := m.prompt("Are you sure you want to delete this recipe? (yes/no): ")
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			result, err := commands.NewDeleteRecipeCommand(m.repo, r.ID).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(m.out, result.Message)
			return nil
		case "no", "n":
			fmt.Fprintln(m.out, "Deletion cancelled.")
			return nil
		default:
			fmt.Fprintln(m.out, "Please enter 'yes' or 'no'.")
		}
	}
}
