// Package commands defines the shop CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login, signup, logout, whoami   Account session
//   - products, product, categories   Browse the catalog
//   - cart                            View and edit the cart
//   - checkout                        Quote and place an order
//   - orders, order                   Order history and cancellation
//   - address                         Saved shipping addresses
//   - wishlist                        Wishlisted products
//   - comments, comment               Product comments
//   - profile                         Profile details and avatar
//   - recent                          Recent search terms
//
// # Implementation
//
// The root command loads config, builds the app (API client, state store,
// services) and restores any saved session before a subcommand runs. Errors
// are printed once as "Error: <message>".
package commands
