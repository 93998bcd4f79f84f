package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dirctl/internal/directory"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect directory users",
}

var usersGetCmd = &cobra.Command{
	Use:   "get [email]",
	Short: "Show a single user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersGet,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users in the domain",
	Long: `List every user in the configured domain.

Optional filters map directly onto the Directory API query parameters;
unset flags are omitted from the request.

Examples:
  dirctl users list
  dirctl users list --query "orgName='Engineering'" --order-by email`,
	RunE: runUsersList,
}

// Flags for users list.
var (
	usersQuery           string
	usersOrderBy         string
	usersSortOrder       string
	usersViewType        string
	usersCustomer        string
	usersCustomFieldMask string
)

func init() {
	usersListCmd.Flags().StringVar(&usersQuery, "query", "", "search query (Directory API query syntax)")
	usersListCmd.Flags().StringVar(&usersOrderBy, "order-by", "", "sort field (email, familyName, givenName)")
	usersListCmd.Flags().StringVar(&usersSortOrder, "sort-order", "", "ASCENDING or DESCENDING")
	usersListCmd.Flags().StringVar(&usersViewType, "view-type", "", "admin_view or domain_public")
	usersListCmd.Flags().StringVar(&usersCustomer, "customer", "", "customer id (overrides domain scoping)")
	usersListCmd.Flags().StringVar(&usersCustomFieldMask, "custom-field-mask", "", "comma-separated custom schema names")

	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.GetUser(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	user, err := directory.UserFromResult(res)
	if err != nil {
		return err
	}

	renderKV(cmd.OutOrStdout(), [][2]string{
		{"Email", user.PrimaryEmail},
		{"Name", user.FullName},
		{"ID", user.ID},
		{"Admin", boolMark(user.IsAdmin)},
		{"Suspended", boolMark(user.Suspended)},
	})
	return nil
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	opts := &directory.UserListOptions{
		Query:           usersQuery,
		OrderBy:         usersOrderBy,
		SortOrder:       usersSortOrder,
		ViewType:        usersViewType,
		Customer:        usersCustomer,
		CustomFieldMask: usersCustomFieldMask,
	}
	pages, err := client.GetAllUsers(cmd.Context(), opts)
	if err != nil {
		return err
	}

	users, err := directory.UsersFromPages(pages)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.PrimaryEmail, u.FullName, boolMark(u.IsAdmin), boolMark(u.Suspended)})
	}
	renderTable(cmd.OutOrStdout(), []string{"EMAIL", "NAME", "ADMIN", "SUSPENDED"}, rows)
	return nil
}
