package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Operator string

const (
	OperatorEqual       Operator = "$eq"
	OperatorNotEqual    Operator = "$ne"
	OperatorGreaterThan Operator = "$gt"
	OperatorLessThan    Operator = "$lt"
)

// Clause is a typed query condition. Clauses are composed into trees and
// rendered to a mongo selector by Selector().
type Clause interface {
	Selector() bson.M
}

type And []Clause

func (a And) Selector() bson.M {
	if len(a) == 0 {
		return bson.M{}
	}
	selectors := make([]bson.M, 0, len(a))
	for _, clause := range a {
		selectors = append(selectors, clause.Selector())
	}
	return bson.M{"$and": selectors}
}

type Or []Clause

func (o Or) Selector() bson.M {
	selectors := make([]bson.M, 0, len(o))
	for _, clause := range o {
		selectors = append(selectors, clause.Selector())
	}
	return bson.M{"$or": selectors}
}

// Not negates any clause. Rendered as a single-branch $nor so it also
// matches documents where the referenced fields are missing entirely.
type Not struct {
	Clause Clause
}

func (n Not) Selector() bson.M {
	return bson.M{"$nor": []bson.M{n.Clause.Selector()}}
}

type Compare struct {
	Field    string
	Operator Operator
	Value    interface{}
}

func (c Compare) Selector() bson.M {
	if c.Operator == OperatorEqual {
		return bson.M{c.Field: c.Value}
	}
	return bson.M{c.Field: bson.M{string(c.Operator): c.Value}}
}

type Regex struct {
	Field           string
	Pattern         string
	CaseInsensitive bool
}

func (r Regex) Selector() bson.M {
	options := ""
	if r.CaseInsensitive {
		options = "i"
	}
	return bson.M{r.Field: primitive.Regex{Pattern: r.Pattern, Options: options}}
}

type Between struct {
	Field string
	Low   interface{}
	High  interface{}
}

func (b Between) Selector() bson.M {
	return bson.M{b.Field: bson.M{"$gte": b.Low, "$lte": b.High}}
}

// CompareFields compares one document field against another.
type CompareFields struct {
	Left     string
	Operator Operator
	Right    string
}

func (c CompareFields) Selector() bson.M {
	return bson.M{"$expr": bson.M{string(c.Operator): bson.A{"$" + c.Left, "$" + c.Right}}}
}
