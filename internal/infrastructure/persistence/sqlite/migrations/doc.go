// Package migrations embeds the SQL migrations for the sqlite save store.
package migrations
