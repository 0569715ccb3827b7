/*
Package postgres persists display tables so that consumers outside of Go,
such as reporting queries or other services, read the same names, groups and order.

[Connect] opens a connection through GORM and runs every [Migration] not yet recorded.
[Sync] writes the rows of each [display.Enumeration] into the enum_displays table,
updating existing rows and deleting those no longer declared.
[Load] reads them back in display order.

When IsTestDB is set on the [CxnConfig], Connect drops the public schema first.
*/
package postgres
