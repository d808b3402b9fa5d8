package graph

import (
	"github.com/graphql-go/graphql"

	"fintrack-be/internal/entities"
)

const dateLayout = "2006-01-02"

// NewSchema builds the GraphQL schema around a root resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	genderEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Gender",
		Values: graphql.EnumValueConfigMap{
			"male":   &graphql.EnumValueConfig{Value: "male"},
			"female": &graphql.EnumValueConfig{Value: "female"},
		},
	})

	transactionTypeEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "TransactionType",
		Values: graphql.EnumValueConfigMap{
			"income":  &graphql.EnumValueConfig{Value: "income"},
			"expense": &graphql.EnumValueConfig{Value: "expense"},
		},
	})

	transactionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"description":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"amount":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"transactionType": &graphql.Field{Type: graphql.NewNonNull(transactionTypeEnum)},
			"location":        &graphql.Field{Type: graphql.String},
			"date": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, ok := p.Source.(*entities.Transaction)
					if !ok {
						return nil, nil
					}
					return t.Date.Format(dateLayout), nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"gender":         &graphql.Field{Type: graphql.NewNonNull(genderEnum)},
			"profilePicture": &graphql.Field{Type: graphql.String},
		},
	})

	// Added after construction: User.transactions refers to transactionType
	userType.AddFieldConfig("transactions", &graphql.Field{
		Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(transactionType))),
		Resolve: r.UserTransactions,
	})

	categoryStatisticType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CategoryStatistic",
		Fields: graphql.Fields{
			"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	logoutPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LogoutPayload",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	signUpInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignUpInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"gender":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(genderEnum)},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"category":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"transactionType": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(transactionTypeEnum)},
			"location":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"date":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"transactionId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"category":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"amount":          &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"transactionType": &graphql.InputObjectFieldConfig{Type: transactionTypeEnum},
			"location":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"date":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"authUser": &graphql.Field{
				Type:    userType,
				Resolve: r.AuthUser,
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.User,
			},
			"transactions": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(transactionType))),
				Resolve: r.Transactions,
			},
			"transaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"transactionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.Transaction,
			},
			"categoryStatistics": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryStatisticType))),
				Resolve: r.CategoryStatistics,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signUpInput)},
				},
				Resolve: r.SignUp,
			},
			"login": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: r.Login,
			},
			"logout": &graphql.Field{
				Type:    logoutPayloadType,
				Resolve: r.Logout,
			},
			"createTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTransactionInput)},
				},
				Resolve: r.CreateTransaction,
			},
			"updateTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTransactionInput)},
				},
				Resolve: r.UpdateTransaction,
			},
			"deleteTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"transactionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.DeleteTransaction,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
