package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/directory"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage group membership",
}

var membersListCmd = &cobra.Command{
	Use:   "list [group]",
	Short: "List a group's members",
	Args:  cobra.ExactArgs(1),
	RunE:  runMembersList,
}

var membersGetCmd = &cobra.Command{
	Use:   "get [group] [member]",
	Short: "Show a single membership entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runMembersGet,
}

var membersAddCmd = &cobra.Command{
	Use:   "add [group] [email]",
	Short: "Add a member to a group",
	Long: `Add a member to a group with the given role.

Roles: OWNER, MANAGER, MEMBER.

Example:
  dirctl members add team@example.com alice@example.com --role MEMBER`,
	Args: cobra.ExactArgs(2),
	RunE: runMembersAdd,
}

var membersRemoveCmd = &cobra.Command{
	Use:   "remove [group] [member]",
	Short: "Remove a member from a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runMembersRemove,
}

var membersUpdateRoleCmd = &cobra.Command{
	Use:   "update-role [group] [member]",
	Short: "Change a member's role",
	Args:  cobra.ExactArgs(2),
	RunE:  runMembersUpdateRole,
}

var (
	addRole    string
	updateRole string
)

func init() {
	membersAddCmd.Flags().StringVar(&addRole, "role", domain.RoleMember, "membership role (OWNER, MANAGER, MEMBER)")
	membersUpdateRoleCmd.Flags().StringVar(&updateRole, "role", "", "membership role (OWNER, MANAGER, MEMBER)")

	membersCmd.AddCommand(membersListCmd)
	membersCmd.AddCommand(membersGetCmd)
	membersCmd.AddCommand(membersAddCmd)
	membersCmd.AddCommand(membersRemoveCmd)
	membersCmd.AddCommand(membersUpdateRoleCmd)
	rootCmd.AddCommand(membersCmd)
}

func runMembersList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	pages, err := client.GetAllMembers(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	members, err := directory.MembersFromPages(pages)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Email, m.Role, m.Type})
	}
	renderTable(cmd.OutOrStdout(), []string{"EMAIL", "ROLE", "TYPE"}, rows)
	return nil
}

func runMembersGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.GetMember(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	member, err := directory.MemberFromResult(res)
	if err != nil {
		return err
	}

	renderKV(cmd.OutOrStdout(), [][2]string{
		{"Email", member.Email},
		{"Role", member.Role},
		{"Type", member.Type},
		{"ID", member.ID},
	})
	return nil
}

func runMembersAdd(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	_, err = client.AddMemberToGroup(cmd.Context(), args[0], args[1], strings.ToUpper(addRole))
	if err != nil {
		// Vendor errors carry a code the operator may want; render and move on.
		if ve, ok := directory.AsVendorError(err); ok {
			return fmt.Errorf("add member rejected by API (code %d): %s", ve.Code(), ve.Detail.Message)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", args[1], args[0])
	return nil
}

func runMembersRemove(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ok, err := client.DeleteMemberFromGroup(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unexpected response removing %s from %s", args[1], args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", args[1], args[0])
	return nil
}

func runMembersUpdateRole(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	_, err = client.UpdateMembership(cmd.Context(), args[0], args[1], strings.ToUpper(updateRole))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "updated %s in %s to %s\n", args[1], args[0], strings.ToUpper(updateRole))
	return nil
}
