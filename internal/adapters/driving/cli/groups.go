package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dirctl/internal/directory"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Inspect directory groups",
}

var groupsGetCmd = &cobra.Command{
	Use:   "get [group]",
	Short: "Show a single group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsGet,
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups in the domain",
	RunE:  runGroupsList,
}

var groupsOfMemberCmd = &cobra.Command{
	Use:   "of-member [email]",
	Short: "List the groups a user or group belongs to",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsOfMember,
}

func init() {
	groupsCmd.AddCommand(groupsGetCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsOfMemberCmd)
	rootCmd.AddCommand(groupsCmd)
}

func runGroupsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.GetGroup(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	group, err := directory.GroupFromResult(res)
	if err != nil {
		return err
	}

	renderKV(cmd.OutOrStdout(), [][2]string{
		{"Email", group.Email},
		{"Name", group.Name},
		{"ID", group.ID},
		{"Members", strconv.FormatInt(group.MemberCount, 10)},
		{"Description", group.Description},
	})
	return nil
}

func runGroupsList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	pages, err := client.GetAllGroups(cmd.Context())
	if err != nil {
		return err
	}
	return renderGroups(cmd, pages)
}

func runGroupsOfMember(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	pages, err := client.GetGroupsForMember(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderGroups(cmd, pages)
}

func renderGroups(cmd *cobra.Command, pages []directory.Page) error {
	groups, err := directory.GroupsFromPages(pages)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Email, g.Name, strconv.FormatInt(g.MemberCount, 10)})
	}
	renderTable(cmd.OutOrStdout(), []string{"EMAIL", "NAME", "MEMBERS"}, rows)
	return nil
}
