// Package zap provides the go.uber.org/zap implementation of log.Logger.
package zap
