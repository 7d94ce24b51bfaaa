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

// GetExtractConfig returns the AI configuration for extraction operations with fallback to global config
func (c *Config) GetExtractConfig() OperationAIConfig {
	config := c.AI.Extract

	c.applyOperationDefaults(&config)

	// Extraction covers both job descriptions and resumes
	if config.CustomPrompts.SystemPrompts.ExtractJob == "" {
		config.CustomPrompts.SystemPrompts.ExtractJob = c.AI.CustomPrompts.SystemPrompts.ExtractJob
	}
	if config.CustomPrompts.UserPrompts.ExtractJob == "" {
		config.CustomPrompts.UserPrompts.ExtractJob = c.AI.CustomPrompts.UserPrompts.ExtractJob
	}
	if config.CustomPrompts.SystemPrompts.ExtractResume == "" {
		config.CustomPrompts.SystemPrompts.ExtractResume = c.AI.CustomPrompts.SystemPrompts.ExtractResume
	}
	if config.CustomPrompts.UserPrompts.ExtractResume == "" {
		config.CustomPrompts.UserPrompts.ExtractResume = c.AI.CustomPrompts.UserPrompts.ExtractResume
	}

	return config
}

// GetTailorConfig returns the AI configuration for tailor operations with fallback to global config
func (c *Config) GetTailorConfig() OperationAIConfig {
	config := c.AI.Tailor

	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.TailorResume == "" {
		config.CustomPrompts.SystemPrompts.TailorResume = c.AI.CustomPrompts.SystemPrompts.TailorResume
	}
	if config.CustomPrompts.UserPrompts.TailorResume == "" {
		config.CustomPrompts.UserPrompts.TailorResume = c.AI.CustomPrompts.UserPrompts.TailorResume
	}

	return config
}
