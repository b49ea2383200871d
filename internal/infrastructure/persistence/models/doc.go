// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities are free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. ToDomain/FromDomain convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel, TenantAggregateModel)
// - identity.go: admins, companies, sub_users, site_users
// - inventory.go: batches, batch_expenses, cars, car_financings
// - finance.go: investors
// - sales.go: customers, customer_payments
//
// The PostgreSQL schema itself is owned by the SQL files under migrations/; the GORM
// tags here mirror it closely enough for AutoMigrate on SQLite in tests.
package models
