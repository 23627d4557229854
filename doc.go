// Package main provides the uefisettings command. It runs the install,
// upgrade and delete lifecycle hooks of the uefisettings extension, which
// manage the uefisettings table holding UEFI settings per hardware
// instance, and can serve the installation status over HTTP. The database
// is MySQL (InnoDB), PostgreSQL or SQLite, accessed through gorm.
package main
