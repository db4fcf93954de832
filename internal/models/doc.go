// Package models defines the core domain models for Duet.
//
// # Current Models
//
// The following models are actively used:
//   - List: A shared checklist owned by the household (groceries, chores, ...)
//   - Item: A single checkable, optionally assignable entry within a List
//   - Expense: A recorded outlay attributed to one of the two members
//   - Settlement: The derived who-owes-whom result under an even split
//   - Mood: One member's current mood from a fixed set
//   - User: A registered household member account
//
// # Design Principles
//
// 1. **Two-person model**: The household has exactly two parties, "You" and
// "Partner". Assignment and payer fields are closed enumerations, never
// free-form names.
// 2. **Derived values stay derived**: item counts, completion counts and all
// settlement figures are recomputed from the authoritative collections on
// every read. No counter field is stored alongside its source data.
// 3. **Session-owned state**: Lists, Expenses and Moods live only in the
// memory of the session that displays them. Only preferences and accounts
// are persisted.
// 4. **Avoid circular references**: relationships use ID strings, not
// pointers.
package models
