package main

// @title Storefront API
// @version 1.0
// @description Storefront catalog, order and wishlist API with full observability (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Catalog products, slugs and gallery images

// @tag.name Categories
// @tag.description Product categories

// @tag.name Users
// @tag.description Storefront accounts

// @tag.name Orders
// @tag.description Customer orders and their lines

// @tag.name Wishlist
// @tag.description Wished products per user

// @tag.name Stats
// @tag.description Dashboard statistics

// @tag.name Health
// @tag.description Health check endpoints
