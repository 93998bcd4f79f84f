package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Inspect domain settings",
}

var domainLanguageCmd = &cobra.Command{
	Use:   "language",
	Short: "Show the domain's default language",
	RunE:  runDomainLanguage,
}

var domainOrgNameCmd = &cobra.Command{
	Use:   "org-name",
	Short: "Show the domain's organisation name",
	RunE:  runDomainOrgName,
}

var domainLicenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Show license seat usage",
	RunE:  runDomainLicense,
}

func init() {
	domainCmd.AddCommand(domainLanguageCmd)
	domainCmd.AddCommand(domainOrgNameCmd)
	domainCmd.AddCommand(domainLicenseCmd)
	rootCmd.AddCommand(domainCmd)
}

func runDomainLanguage(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	lang, err := client.GetDefaultLanguage(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), lang)
	return nil
}

func runDomainOrgName(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	name, err := client.GetOrganizationName(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

func runDomainLicense(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	info, err := client.GetLicenseInfo(cmd.Context())
	if err != nil {
		return err
	}

	renderKV(cmd.OutOrStdout(), [][2]string{
		{"Licensed", strconv.Itoa(info.MaxAccount)},
		{"In use", strconv.Itoa(info.CurAccount)},
		{"Free", strconv.Itoa(info.Free)},
	})
	return nil
}
