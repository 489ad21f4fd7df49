package main

import (
	"fmt"
	"time"

	"github.com/go-arcade/ats/internal/bootstrap"
	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/pkg/http/jwt"
	"github.com/go-arcade/ats/pkg/version"
	"github.com/spf13/cobra"
)

/**
 * @file: main.go
 * @description: ats server and operator tooling
 */

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ats",
	Short: "multi tenant applicant tracking service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the http api",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap.Bootstrap(configFile, initApp)
		if err != nil {
			return err
		}
		bootstrap.Run(a, cleanup)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap.Migrate(configFile)
	},
}

var (
	tokenUser   string
	tokenEmail  string
	tokenExpire time.Duration
)

// tokenCmd mints a bearer token signed with the configured secret, for local use.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "mint a development bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		appConf, err := config.LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		httpConf := config.ProvideHttpConfig(&appConf)
		if httpConf.Auth.JWTSecret == "" {
			return fmt.Errorf("http.auth.jwtSecret is not configured")
		}
		tok, err := jwt.GenToken(tokenUser, tokenEmail, []byte(httpConf.Auth.JWTSecret), httpConf.Auth.Audience, tokenExpire)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "conf", "c", "conf.d/config.toml", "config file path")

	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "subject (operator user id)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "operator email")
	tokenCmd.Flags().DurationVar(&tokenExpire, "expire", time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd, version.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
