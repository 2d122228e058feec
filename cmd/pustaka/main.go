package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pustaka/internal/bootstrap"
	readerdto "pustaka/internal/modules/reader/dto"
	"pustaka/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var libraryPath string

	root := &cobra.Command{
		Use:           "pustaka",
		Short:         "Perpustakaan digital sekolah di terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&libraryPath, "library", ".", "library root path")

	root.AddCommand(newTUICmd(&libraryPath))
	root.AddCommand(newBookCmd(&libraryPath))
	root.AddCommand(newReaderCmd(&libraryPath))
	root.AddCommand(newVisitCmd(&libraryPath))
	root.AddCommand(newAdminCmd(&libraryPath))
	root.AddCommand(newDashboardCmd(&libraryPath))
	root.AddCommand(newReindexCmd(&libraryPath))
	root.AddCommand(newPluginCmd(&libraryPath))
	return root
}

func loadApp(libraryPath string) (*bootstrap.App, error) {
	cfg, err := config.New(libraryPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(libraryPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run pustaka terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*libraryPath, app)
		},
	}
}

func newBookCmd(libraryPath *string) *cobra.Command {
	book := &cobra.Command{Use: "book", Short: "Manage the book catalog"}

	var title, author, category, pdfPath, coverPath string
	add := &cobra.Command{
		Use:   "add --title <title> --category <SD|SMP|SMA|Lainnya> --pdf <path>",
		Short: "Add a book to the catalog (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(title) == "" || strings.TrimSpace(pdfPath) == "" {
				return fmt.Errorf("--title and --pdf are required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.AddBook(context.Background(), title, author, category, pdfPath, coverPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) note=%s\n", out.Title, out.ID, out.NotePath)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "book title")
	add.Flags().StringVar(&author, "author", "", "book author")
	add.Flags().StringVar(&category, "category", "Lainnya", "school level: SD|SMP|SMA|Lainnya")
	add.Flags().StringVar(&pdfPath, "pdf", "", "path to the book PDF")
	add.Flags().StringVar(&coverPath, "cover", "", "path to the cover image (optional)")

	var listCategory string
	list := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally by school level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			books, err := app.CatalogCLI.ListBooks(context.Background(), listCategory)
			if err != nil {
				return err
			}
			if len(books) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no books")
				return nil
			}
			for _, b := range books {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", b.ID, b.Category, b.Title, b.Author)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listCategory, "category", "", "filter by school level")

	var bookID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show book details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			b, err := app.CatalogCLI.GetBook(context.Background(), bookID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\nauthor: %s\ncategory: %s\npdf: %s\ncover: %s\nnote: %s\nadded: %s\n",
				b.ID, b.Title, b.Author, b.Category, b.PDFPath, b.CoverPath, b.NotePath, b.AddedAt)
			return nil
		},
	}
	show.Flags().StringVar(&bookID, "id", "", "book id")

	var updateID, updateTitle, updateAuthor, updateCategory string
	update := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update book metadata (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(updateID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.UpdateBook(context.Background(), updateID, updateTitle, updateAuthor, updateCategory)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	update.Flags().StringVar(&updateID, "id", "", "book id")
	update.Flags().StringVar(&updateTitle, "title", "", "new title (blank keeps current)")
	update.Flags().StringVar(&updateAuthor, "author", "", "new author (blank keeps current)")
	update.Flags().StringVar(&updateCategory, "category", "", "new school level (blank keeps current)")

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a book and its stored files (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.DeleteBook(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "book id")

	counts := &cobra.Command{
		Use:   "counts",
		Short: "Show book counts per school level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			byCategory, err := app.CatalogCLI.CategoryCounts(context.Background())
			if err != nil {
				return err
			}
			for _, category := range []string{"SD", "SMP", "SMA", "Lainnya"} {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", category, byCategory[category])
			}
			return nil
		},
	}

	book.AddCommand(add, list, show, update, deleteCmd, counts)
	return book
}

func newReaderCmd(libraryPath *string) *cobra.Command {
	reader := &cobra.Command{Use: "reader", Short: "Reading sessions and bookmarks"}

	var bookID string
	var page int
	open := &cobra.Command{
		Use:   "open --id <id>",
		Short: "Open a book, resuming from saved progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.ReaderCLI.OpenBook(context.Background(), bookID)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	open.Flags().StringVar(&bookID, "id", "", "book id")

	pageCmd := &cobra.Command{
		Use:   "page --id <id> --page <n>",
		Short: "Turn to a page (1-based) and save progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			if page < 1 {
				return fmt.Errorf("--page must be 1 or greater")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.ReaderCLI.TurnPage(context.Background(), bookID, page-1)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	pageCmd.Flags().StringVar(&bookID, "id", "", "book id")
	pageCmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")

	mark := &cobra.Command{
		Use:   "mark --id <id> --page <n>",
		Short: "Bookmark a page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			if page < 1 {
				return fmt.Errorf("--page must be 1 or greater")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			marks, err := app.ReaderCLI.AddBookmark(context.Background(), bookID, page-1)
			if err != nil {
				return err
			}
			printBookmarks(cmd, marks)
			return nil
		},
	}
	mark.Flags().StringVar(&bookID, "id", "", "book id")
	mark.Flags().IntVar(&page, "page", 1, "page number (1-based)")

	bookmarks := &cobra.Command{
		Use:   "bookmarks --id <id>",
		Short: "List bookmarked pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			marks, err := app.ReaderCLI.ListBookmarks(context.Background(), bookID)
			if err != nil {
				return err
			}
			printBookmarks(cmd, marks)
			return nil
		},
	}
	bookmarks.Flags().StringVar(&bookID, "id", "", "book id")

	jump := &cobra.Command{
		Use:   "jump --id <id> --page <n>",
		Short: "Jump to a bookmarked page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(bookID) == "" {
				return fmt.Errorf("--id is required")
			}
			if page < 1 {
				return fmt.Errorf("--page must be 1 or greater")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.ReaderCLI.JumpToBookmark(context.Background(), bookID, page-1)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	jump.Flags().StringVar(&bookID, "id", "", "book id")
	jump.Flags().IntVar(&page, "page", 1, "page number (1-based)")

	reader.AddCommand(open, pageCmd, mark, bookmarks, jump)
	return reader
}

func newVisitCmd(libraryPath *string) *cobra.Command {
	var name, gender string
	visit := &cobra.Command{
		Use:   "visit --name <name> --gender <Laki-laki|Perempuan>",
		Short: "Record a library visit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.RegisterVisitor(context.Background(), name, gender)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "visit recorded: %s (%s) at %s\n", out.Name, out.ID, out.VisitedAt)
			return nil
		},
	}
	visit.Flags().StringVar(&name, "name", "", "visitor name")
	visit.Flags().StringVar(&gender, "gender", "", "visitor gender: Laki-laki|Perempuan")
	return visit
}

func newAdminCmd(libraryPath *string) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Admin session lifecycle"}

	var email, password string
	setPassword := &cobra.Command{
		Use:   "set-password --email <email> --password <password>",
		Short: "Create or replace an admin credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.SetCredential(context.Background(), email, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "credential stored for %s\n", email)
			return nil
		},
	}
	setPassword.Flags().StringVar(&email, "email", "", "admin email")
	setPassword.Flags().StringVar(&password, "password", "", "admin password")

	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Open an admin session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s at %s\n", out.Email, out.LoggedInAt)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "admin email")
	login.Flags().StringVar(&password, "password", "", "admin password")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Close the admin session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the admin session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "email=%s logged_in=%s last_activity=%s\n", out.Email, out.LoggedInAt, out.LastActivityAt)
			return nil
		},
	}

	admin.AddCommand(setPassword, login, logout, status)
	return admin
}

func newDashboardCmd(libraryPath *string) *cobra.Command {
	dashboard := &cobra.Command{Use: "dashboard", Short: "Visit statistics (admin)"}

	dashboard.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print visit counters and collection sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.Dashboard(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total_visits=%d\n", out.TotalVisits)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily=%v\n", out.Daily)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "monthly=%v\n", out.Monthly)
			for _, y := range out.Yearly {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "year %d: %d\n", y.Year, y.Count)
			}
			for _, category := range []string{"SD", "SMP", "SMA", "Lainnya"} {
				if count, ok := out.CategoryCounts[category]; ok {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "books %s: %d\n", category, count)
				}
			}
			return nil
		},
	})

	var exportPath string
	export := &cobra.Command{
		Use:   "export --out <file.xlsx>",
		Short: "Export visit statistics to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(exportPath) == "" {
				return fmt.Errorf("--out is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			saved, err := app.ActivityCLI.Export(context.Background(), exportPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", saved)
			return nil
		},
	}
	export.Flags().StringVar(&exportPath, "out", "", "output xlsx path")
	dashboard.AddCommand(export)

	return dashboard
}

func newReindexCmd(libraryPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from shelf notes and the visit log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Reindex(context.Background()); err != nil {
				return err
			}
			if err := app.ActivityCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newPluginCmd(libraryPath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Report plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", p.Name, p.Version, p.Enabled, p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var reportsPluginName string
	reportsCmd := &cobra.Command{
		Use:   "reports --plugin <name>",
		Short: "List reports exposed by a plugin (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reportsPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			reports, err := app.PluginCLI.ListReports(context.Background(), reportsPluginName)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reports")
				return nil
			}
			for _, item := range reports {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s format=%s timeout_ms=%d title=%q\n", item.ID, item.Format, item.TimeoutMS, item.Title)
			}
			return nil
		},
	}
	reportsCmd.Flags().StringVar(&reportsPluginName, "plugin", "", "plugin name")
	plugin.AddCommand(reportsCmd)

	var renderPluginName, renderReportID string
	renderCmd := &cobra.Command{
		Use:   "render --plugin <name> --report <id>",
		Short: "Render a report against the current dashboard (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(renderPluginName) == "" || strings.TrimSpace(renderReportID) == "" {
				return fmt.Errorf("--plugin and --report are required")
			}
			app, err := loadApp(*libraryPath)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Render(context.Background(), renderPluginName, renderReportID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plugin=%s report=%s format=%s\n", out.PluginName, out.ReportID, out.Format)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}
	renderCmd.Flags().StringVar(&renderPluginName, "plugin", "", "plugin name")
	renderCmd.Flags().StringVar(&renderReportID, "report", "", "report id")
	plugin.AddCommand(renderCmd)

	return plugin
}

func printSession(cmd *cobra.Command, out readerdto.SessionOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "book=%s title=%q state=%s page=%d/%d progress=%d%%\n",
		out.BookID, out.Title, out.State, out.Page+1, out.TotalPages, out.Percent)
	if len(out.Bookmarks) > 0 {
		printBookmarks(cmd, out.Bookmarks)
	}
	if strings.TrimSpace(out.Content) != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
	}
}

func printBookmarks(cmd *cobra.Command, marks []int) {
	if len(marks) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no bookmarks")
		return
	}
	pages := make([]string, len(marks))
	for i, p := range marks {
		pages[i] = strconv.Itoa(p + 1)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bookmarks: %s\n", strings.Join(pages, ", "))
}
