package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetAnalyzeConfig returns the AI configuration for job posting analysis with fallback to global config
func (c *Config) GetAnalyzeConfig() OperationAIConfig {
	config := c.AI.Analyze

	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.AnalyzeJob == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeJob = c.AI.CustomPrompts.SystemPrompts.AnalyzeJob
	}
	if config.CustomPrompts.UserPrompts.AnalyzeJob == "" {
		config.CustomPrompts.UserPrompts.AnalyzeJob = c.AI.CustomPrompts.UserPrompts.AnalyzeJob
	}

	return config
}

// GetResumeConfig returns the AI configuration for resume generation with fallback to global config
func (c *Config) GetResumeConfig() OperationAIConfig {
	config := c.AI.Resume

	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.GenerateResume == "" {
		config.CustomPrompts.SystemPrompts.GenerateResume = c.AI.CustomPrompts.SystemPrompts.GenerateResume
	}
	if config.CustomPrompts.UserPrompts.GenerateResume == "" {
		config.CustomPrompts.UserPrompts.GenerateResume = c.AI.CustomPrompts.UserPrompts.GenerateResume
	}

	return config
}

// GetLetterConfig returns the AI configuration for cover letter generation with fallback to global config
func (c *Config) GetLetterConfig() OperationAIConfig {
	config := c.AI.Letter

	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.GenerateLetter == "" {
		config.CustomPrompts.SystemPrompts.GenerateLetter = c.AI.CustomPrompts.SystemPrompts.GenerateLetter
	}
	if config.CustomPrompts.UserPrompts.GenerateLetter == "" {
		config.CustomPrompts.UserPrompts.GenerateLetter = c.AI.CustomPrompts.UserPrompts.GenerateLetter
	}

	return config
}
